package usecase

import (
	"context"
	"fmt"

	"seat-board/internal/data/entity"
	"seat-board/internal/data/repository"
	"seat-board/internal/dto/request"
	"seat-board/internal/dto/response"
	"seat-board/internal/seatmap"
	"seat-board/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	ListSeats(ctx context.Context) ([]*response.SeatResponse, error)
	BookSeat(ctx context.Context, req *request.BookSeatRequest) (*response.BookingConfirmation, error)
	ResetSeats(ctx context.Context) (*response.ResetConfirmation, error)
	SeatStats(ctx context.Context) (*response.StatsResponse, error)
}

type bookingService struct {
	seats repository.SeatRepository
	log   *zap.Logger
}

// NewBookingService takes the seat repository as an injected handle so
// tests can substitute a store double (e.g. one that always reports a
// lost race).
func NewBookingService(seats repository.SeatRepository, log *zap.Logger) BookingService {
	return &bookingService{
		seats: seats,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListSeats(ctx context.Context) ([]*response.SeatResponse, error) {
	seats, err := s.seats.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list seats", zap.Error(err))
		return nil, fmt.Errorf("list seats: %w", err)
	}

	// The store orders lexicographically; reorder naturally so A2
	// precedes A10 in the response as well as on the board.
	seatmap.SortNatural(seats)

	result := make([]*response.SeatResponse, 0, len(seats))
	for _, seat := range seats {
		result = append(result, &response.SeatResponse{
			SeatNo:   seat.SeatNo,
			IsBooked: seat.IsBooked,
		})
	}

	return result, nil
}

func (s *bookingService) BookSeat(ctx context.Context, req *request.BookSeatRequest) (*response.BookingConfirmation, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Pre-check: fail fast with a friendly error for the common cases.
	// This is an optimization only; the conditional update below is
	// what actually decides under concurrency.
	seat, err := s.seats.FindBySeatNo(ctx, req.SeatNo)
	if err != nil {
		s.log.Error("Failed to fetch seat",
			zap.Error(err),
			zap.String("seat_no", req.SeatNo),
		)
		return nil, fmt.Errorf("fetch seat: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrSeatNotFound, req.SeatNo)
	}
	if seat.IsBooked {
		return nil, entity.ErrSeatAlreadyBooked
	}

	// Conditional update: set is_booked only where it is still false.
	booked, err := s.seats.BookIfAvailable(ctx, req.SeatNo)
	if err != nil {
		return nil, fmt.Errorf("book seat: %w", err)
	}
	if !booked {
		// Zero rows affected: another request won between our
		// pre-check and our write.
		s.log.Warn("Lost booking race", zap.String("seat_no", req.SeatNo))
		return nil, entity.ErrSeatRaceLost
	}

	s.log.Info("Seat booked", zap.String("seat_no", req.SeatNo))

	return &response.BookingConfirmation{
		Message: fmt.Sprintf("Seat %s booked successfully", req.SeatNo),
		SeatNo:  req.SeatNo,
	}, nil
}

func (s *bookingService) ResetSeats(ctx context.Context) (*response.ResetConfirmation, error) {
	if err := s.seats.ResetAll(ctx); err != nil {
		s.log.Error("Failed to reset seats", zap.Error(err))
		return nil, fmt.Errorf("reset seats: %w", err)
	}

	return &response.ResetConfirmation{Message: "All seats reset"}, nil
}

func (s *bookingService) SeatStats(ctx context.Context) (*response.StatsResponse, error) {
	seats, err := s.seats.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load seats for stats", zap.Error(err))
		return nil, fmt.Errorf("load seats: %w", err)
	}

	stats := seatmap.ComputeStats(seats)

	return &response.StatsResponse{
		Total:            stats.Total,
		Booked:           stats.Booked,
		Available:        stats.Available,
		BookedPercent:    stats.BookedPercent,
		AvailablePercent: stats.AvailablePercent,
	}, nil
}
