package entity

// Seat is the single persisted entity of the board.
// SeatNo format is "<RowLetter><ColumnNumber>", e.g. A1, B10.
// Rows are never created or deleted at runtime, only is_booked toggles.
type Seat struct {
	SeatNo   string `db:"seat_no"`
	IsBooked bool   `db:"is_booked"`
}
