package usecase

import (
	"context"
	"fmt"

	"seat-board/internal/data/entity"
	"seat-board/internal/data/repository"
	"seat-board/pkg/utils"

	"go.uber.org/zap"
)

type SeederService interface {
	// SeedIfEmpty inserts the configured rows x columns grid when the
	// seats table has no rows yet. A non-empty table is left untouched
	// so externally seeded deployments keep their layout.
	SeedIfEmpty(ctx context.Context) error
}

type seederService struct {
	seats  repository.SeatRepository
	config utils.SeedConfig
	log    *zap.Logger
}

func NewSeederService(seats repository.SeatRepository, config utils.SeedConfig, log *zap.Logger) SeederService {
	return &seederService{
		seats:  seats,
		config: config,
		log:    log.With(zap.String("service", "seeder")),
	}
}

func (s *seederService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.seats.Count(ctx)
	if err != nil {
		return fmt.Errorf("count seats: %w", err)
	}

	if count > 0 {
		s.log.Debug("Seats already seeded", zap.Int("count", count))
		return nil
	}

	seats := make([]*entity.Seat, 0, len(s.config.Rows)*s.config.Columns)
	for _, row := range s.config.Rows {
		for col := 1; col <= s.config.Columns; col++ {
			seats = append(seats, &entity.Seat{
				SeatNo: fmt.Sprintf("%c%d", row, col),
			})
		}
	}

	if err := s.seats.CreateBatch(ctx, seats); err != nil {
		return fmt.Errorf("seed seats: %w", err)
	}

	s.log.Info("Seats seeded",
		zap.String("rows", s.config.Rows),
		zap.Int("columns", s.config.Columns),
		zap.Int("count", len(seats)),
	)

	return nil
}
