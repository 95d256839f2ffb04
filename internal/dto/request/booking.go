package request

type BookSeatRequest struct {
	SeatNo string `json:"seat_no" validate:"required"`
}
