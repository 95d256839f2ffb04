package response

// SeatResponse mirrors the stored seat row on the wire.
type SeatResponse struct {
	SeatNo   string `json:"seat_no"`
	IsBooked bool   `json:"is_booked"`
}

type BookingConfirmation struct {
	Message string `json:"message"`
	SeatNo  string `json:"seat_no"`
}

type ResetConfirmation struct {
	Message string `json:"message"`
}

// StatsResponse is the occupancy snapshot. BookedPercent and
// AvailablePercent always sum to exactly 100.
type StatsResponse struct {
	Total            int `json:"total"`
	Booked           int `json:"booked"`
	Available        int `json:"available"`
	BookedPercent    int `json:"booked_percent"`
	AvailablePercent int `json:"available_percent"`
}
