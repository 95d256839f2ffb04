package entity

import "errors"

var (
	// ErrValidation covers missing/invalid request input (HTTP 400)
	ErrValidation = errors.New("validation failed")

	// ErrSeatNotFound means no row matches the seat number (HTTP 404)
	ErrSeatNotFound = errors.New("seat not found")

	// ErrSeatAlreadyBooked is the pre-check rejection: the seat was
	// already booked before we attempted the update (HTTP 409)
	ErrSeatAlreadyBooked = errors.New("seat already booked")

	// ErrSeatRaceLost is the conditional update reporting zero affected
	// rows: another request booked the seat between our pre-check and
	// our write. Same HTTP 409, but must stay distinguishable from
	// ErrSeatAlreadyBooked in logs and tests.
	ErrSeatRaceLost = errors.New("seat already booked by another request")
)
