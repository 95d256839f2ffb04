package wire

import (
	"seat-board/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/seats - Full seat list, natural order (public)
	r.Get("/api/seats", seatHandler.GetSeats)

	// POST /api/book - Book one seat by seat_no (public)
	r.Post("/api/book", seatHandler.BookSeat)

	// POST /api/reset - Mark every seat available again (public)
	r.Post("/api/reset", seatHandler.ResetSeats)

	// GET /api/stats - Occupancy counts and percentages (public)
	r.Get("/api/stats", seatHandler.GetStats)
}
