package usecase

import (
	"context"
	"errors"
	"testing"

	"seat-board/internal/data/entity"
	"seat-board/internal/dto/request"
	"seat-board/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockSeatRepo lets each test script the store's answers, including
// the zero-rows-affected race loss.
type mockSeatRepo struct {
	FindAllFunc         func(ctx context.Context) ([]*entity.Seat, error)
	FindBySeatNoFunc    func(ctx context.Context, seatNo string) (*entity.Seat, error)
	CountFunc           func(ctx context.Context) (int, error)
	BookIfAvailableFunc func(ctx context.Context, seatNo string) (bool, error)
	ResetAllFunc        func(ctx context.Context) error
	CreateBatchFunc     func(ctx context.Context, seats []*entity.Seat) error
}

func (m *mockSeatRepo) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockSeatRepo) FindBySeatNo(ctx context.Context, seatNo string) (*entity.Seat, error) {
	return m.FindBySeatNoFunc(ctx, seatNo)
}

func (m *mockSeatRepo) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

func (m *mockSeatRepo) BookIfAvailable(ctx context.Context, seatNo string) (bool, error) {
	return m.BookIfAvailableFunc(ctx, seatNo)
}

func (m *mockSeatRepo) ResetAll(ctx context.Context) error {
	return m.ResetAllFunc(ctx)
}

func (m *mockSeatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	return m.CreateBatchFunc(ctx, seats)
}

func TestBookSeat(t *testing.T) {
	tests := []struct {
		name    string
		seatNo  string
		repo    *mockSeatRepo
		wantErr error
	}{
		{
			name:    "empty seat_no fails validation without touching the store",
			seatNo:  "",
			repo:    &mockSeatRepo{},
			wantErr: entity.ErrValidation,
		},
		{
			name:   "unknown seat",
			seatNo: "Z99",
			repo: &mockSeatRepo{
				FindBySeatNoFunc: func(ctx context.Context, seatNo string) (*entity.Seat, error) {
					return nil, nil
				},
			},
			wantErr: entity.ErrSeatNotFound,
		},
		{
			name:   "already booked rejected by the pre-check",
			seatNo: "A2",
			repo: &mockSeatRepo{
				FindBySeatNoFunc: func(ctx context.Context, seatNo string) (*entity.Seat, error) {
					return &entity.Seat{SeatNo: "A2", IsBooked: true}, nil
				},
			},
			wantErr: entity.ErrSeatAlreadyBooked,
		},
		{
			name:   "pre-check passes but the conditional update loses the race",
			seatNo: "A1",
			repo: &mockSeatRepo{
				FindBySeatNoFunc: func(ctx context.Context, seatNo string) (*entity.Seat, error) {
					return &entity.Seat{SeatNo: "A1", IsBooked: false}, nil
				},
				BookIfAvailableFunc: func(ctx context.Context, seatNo string) (bool, error) {
					return false, nil
				},
			},
			wantErr: entity.ErrSeatRaceLost,
		},
		{
			name:   "store failure on fetch",
			seatNo: "A1",
			repo: &mockSeatRepo{
				FindBySeatNoFunc: func(ctx context.Context, seatNo string) (*entity.Seat, error) {
					return nil, errors.New("connection refused")
				},
			},
			wantErr: nil, // plain wrapped error, asserted below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewBookingService(tt.repo, zap.NewNop())

			confirmation, err := service.BookSeat(context.Background(), &request.BookSeatRequest{SeatNo: tt.seatNo})

			require.Error(t, err)
			assert.Nil(t, confirmation)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBookSeatSuccess(t *testing.T) {
	var gotSeatNo string
	repo := &mockSeatRepo{
		FindBySeatNoFunc: func(ctx context.Context, seatNo string) (*entity.Seat, error) {
			return &entity.Seat{SeatNo: seatNo, IsBooked: false}, nil
		},
		BookIfAvailableFunc: func(ctx context.Context, seatNo string) (bool, error) {
			gotSeatNo = seatNo
			return true, nil
		},
	}
	service := NewBookingService(repo, zap.NewNop())

	confirmation, err := service.BookSeat(context.Background(), &request.BookSeatRequest{SeatNo: "B7"})

	require.NoError(t, err)
	assert.Equal(t, "B7", gotSeatNo)
	assert.Equal(t, "B7", confirmation.SeatNo)
	assert.Equal(t, "Seat B7 booked successfully", confirmation.Message)
}

func TestConflictMessagesAreDistinct(t *testing.T) {
	// Both surface 409, but logs and tests must tell them apart
	assert.NotEqual(t, entity.ErrSeatAlreadyBooked.Error(), entity.ErrSeatRaceLost.Error())
}

func TestListSeats(t *testing.T) {
	t.Run("seats come back in natural order", func(t *testing.T) {
		repo := &mockSeatRepo{
			FindAllFunc: func(ctx context.Context) ([]*entity.Seat, error) {
				// Store order is lexicographic: A10 before A2
				return []*entity.Seat{
					{SeatNo: "A1"},
					{SeatNo: "A10"},
					{SeatNo: "A2", IsBooked: true},
				}, nil
			},
		}
		service := NewBookingService(repo, zap.NewNop())

		seats, err := service.ListSeats(context.Background())

		require.NoError(t, err)
		require.Len(t, seats, 3)
		assert.Equal(t, "A1", seats[0].SeatNo)
		assert.Equal(t, "A2", seats[1].SeatNo)
		assert.True(t, seats[1].IsBooked)
		assert.Equal(t, "A10", seats[2].SeatNo)
	})

	t.Run("empty table yields an empty slice, not nil", func(t *testing.T) {
		repo := &mockSeatRepo{
			FindAllFunc: func(ctx context.Context) ([]*entity.Seat, error) {
				return nil, nil
			},
		}
		service := NewBookingService(repo, zap.NewNop())

		seats, err := service.ListSeats(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, seats)
		assert.Empty(t, seats)
	})

	t.Run("store failure surfaces, no partial data", func(t *testing.T) {
		repo := &mockSeatRepo{
			FindAllFunc: func(ctx context.Context) ([]*entity.Seat, error) {
				return nil, errors.New("store unreachable")
			},
		}
		service := NewBookingService(repo, zap.NewNop())

		seats, err := service.ListSeats(context.Background())

		require.Error(t, err)
		assert.Nil(t, seats)
	})
}

func TestResetSeats(t *testing.T) {
	calls := 0
	repo := &mockSeatRepo{
		ResetAllFunc: func(ctx context.Context) error {
			calls++
			return nil
		},
	}
	service := NewBookingService(repo, zap.NewNop())

	// Idempotent: a second reset is just as fine as the first
	for i := 0; i < 2; i++ {
		confirmation, err := service.ResetSeats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "All seats reset", confirmation.Message)
	}
	assert.Equal(t, 2, calls)
}

func TestSeatStats(t *testing.T) {
	repo := &mockSeatRepo{
		FindAllFunc: func(ctx context.Context) ([]*entity.Seat, error) {
			return []*entity.Seat{
				{SeatNo: "A1", IsBooked: true},
				{SeatNo: "A2"},
				{SeatNo: "A3"},
			}, nil
		},
	}
	service := NewBookingService(repo, zap.NewNop())

	stats, err := service.SeatStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Booked)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 33, stats.BookedPercent)
	assert.Equal(t, 67, stats.AvailablePercent)
}

func TestSeedIfEmpty(t *testing.T) {
	config := utils.SeedConfig{Rows: "AB", Columns: 3}

	t.Run("seeds the full grid when the table is empty", func(t *testing.T) {
		var created []*entity.Seat
		repo := &mockSeatRepo{
			CountFunc: func(ctx context.Context) (int, error) { return 0, nil },
			CreateBatchFunc: func(ctx context.Context, seats []*entity.Seat) error {
				created = seats
				return nil
			},
		}

		err := NewSeederService(repo, config, zap.NewNop()).SeedIfEmpty(context.Background())

		require.NoError(t, err)
		require.Len(t, created, 6)
		assert.Equal(t, "A1", created[0].SeatNo)
		assert.Equal(t, "B3", created[5].SeatNo)
		for _, seat := range created {
			assert.False(t, seat.IsBooked)
		}
	})

	t.Run("leaves a non-empty table alone", func(t *testing.T) {
		repo := &mockSeatRepo{
			CountFunc: func(ctx context.Context) (int, error) { return 12, nil },
			CreateBatchFunc: func(ctx context.Context, seats []*entity.Seat) error {
				t.Fatal("CreateBatch must not be called")
				return nil
			},
		}

		err := NewSeederService(repo, config, zap.NewNop()).SeedIfEmpty(context.Background())

		require.NoError(t, err)
	})
}
