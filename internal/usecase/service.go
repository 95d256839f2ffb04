package usecase

import (
	"seat-board/internal/data/repository"
	"seat-board/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Seeder  SeederService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo.Seat, log),
		Seeder:  NewSeederService(repo.Seat, config.Seed, log),
	}
}
