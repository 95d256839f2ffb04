package repository

import (
	"seat-board/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Seat SeatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Seat: NewSeatRepository(db, log),
	}
}
