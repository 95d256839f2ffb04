package repository

import (
	"context"
	"fmt"

	"seat-board/internal/data/entity"
	"seat-board/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	// Reads
	FindAll(ctx context.Context) ([]*entity.Seat, error)
	FindBySeatNo(ctx context.Context, seatNo string) (*entity.Seat, error)
	Count(ctx context.Context) (int, error)

	// Writes
	// BookIfAvailable is the compare-and-swap: it only flips the row
	// when is_booked is still false, and reports whether a row changed.
	BookIfAvailable(ctx context.Context, seatNo string) (bool, error)
	ResetAll(ctx context.Context) error
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	query := `
		SELECT seat_no, is_booked
		FROM seats
		ORDER BY seat_no
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find seats", zap.Error(err))
		return nil, fmt.Errorf("failed to find seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.SeatNo, &seat.IsBooked); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to read seat rows", zap.Error(err))
		return nil, fmt.Errorf("failed to read seats: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) FindBySeatNo(ctx context.Context, seatNo string) (*entity.Seat, error) {
	query := `
		SELECT seat_no, is_booked
		FROM seats
		WHERE seat_no = $1
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, seatNo).Scan(&seat.SeatNo, &seat.IsBooked)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat",
			zap.Error(err),
			zap.String("seat_no", seatNo),
		)
		return nil, fmt.Errorf("failed to find seat: %w", err)
	}

	return &seat, nil
}

func (r *seatRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM seats`

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count seats", zap.Error(err))
		return 0, fmt.Errorf("failed to count seats: %w", err)
	}

	return count, nil
}

func (r *seatRepository) BookIfAvailable(ctx context.Context, seatNo string) (bool, error) {
	// The WHERE is_booked = false predicate is the correctness
	// mechanism: Postgres updates the row atomically, so of two
	// concurrent attempts only one can see RowsAffected() == 1.
	query := `UPDATE seats SET is_booked = true WHERE seat_no = $1 AND is_booked = false`

	result, err := r.db.Exec(ctx, query, seatNo)
	if err != nil {
		r.log.Error("Failed to book seat",
			zap.Error(err),
			zap.String("seat_no", seatNo),
		)
		return false, fmt.Errorf("failed to book seat: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *seatRepository) ResetAll(ctx context.Context) error {
	// Unconditional write to every row, idempotent on purpose.
	query := `UPDATE seats SET is_booked = false`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to reset seats", zap.Error(err))
		return fmt.Errorf("failed to reset seats: %w", err)
	}

	r.log.Info("All seats reset", zap.Int64("rows", result.RowsAffected()))
	return nil
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO seats (seat_no, is_booked) VALUES `
	args := []interface{}{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)

		args = append(args, seat.SeatNo, seat.IsBooked)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("failed to create batch seats: %w", err)
	}

	return nil
}
