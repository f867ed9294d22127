package booking

import "errors"

var (
	ErrEmptyBooking    = errors.New("cannot confirm a booking with no rooms")
	ErrCanceledBooking = errors.New("cannot confirm a canceled booking")
	ErrNoGuest         = errors.New("booking requires a guest")
	ErrNextID          = errors.New("get next id from generator")
)
