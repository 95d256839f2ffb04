package adaptor

import (
	"seat-board/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Seat *SeatHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Seat: NewSeatHandler(service.Booking, log),
	}
}
