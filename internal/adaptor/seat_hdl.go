package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"seat-board/internal/data/entity"
	"seat-board/internal/dto/request"
	"seat-board/internal/usecase"
	"seat-board/pkg/utils"

	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.BookingService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeats handles GET /api/seats
func (h *SeatHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.ListSeats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list seats")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, seats)
}

// BookSeat handles POST /api/book
func (h *SeatHandler) BookSeat(w http.ResponseWriter, r *http.Request) {
	var req request.BookSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	confirmation, err := h.service.BookSeat(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "book seat")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, confirmation)
}

// ResetSeats handles POST /api/reset
func (h *SeatHandler) ResetSeats(w http.ResponseWriter, r *http.Request) {
	confirmation, err := h.service.ResetSeats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "reset seats")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, confirmation)
}

// GetStats handles GET /api/stats
func (h *SeatHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.SeatStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "seat stats")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, stats)
}

// handleServiceError maps the service error taxonomy to HTTP statuses.
// Both conflict flavors share 409; their messages stay distinct.
func (h *SeatHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, entity.ErrSeatNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrSeatAlreadyBooked), errors.Is(err, entity.ErrSeatRaceLost):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
	}
}
