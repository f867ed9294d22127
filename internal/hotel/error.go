package hotel

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativePrice = errors.New("nightly price cannot be negative")
	ErrDuplicateRoom = errors.New("room number already registered")
	ErrRoomNotFound  = errors.New("room not found")
)

// InvalidRangeError reports a stay whose check-in is not strictly before its
// check-out.
type InvalidRangeError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf(
		"check-in %v must be before check-out %v",
		e.CheckIn.Format(time.DateOnly),
		e.CheckOut.Format(time.DateOnly),
	)
}

func IsInvalidRangeError(err error) *InvalidRangeError {
	if err == nil {
		return nil
	}

	var rangeErr *InvalidRangeError

	if errors.As(err, &rangeErr) {
		return rangeErr
	}

	return nil
}

// RoomUnavailableError reports a requested stay that overlaps an interval
// already reserved for the room.
type RoomUnavailableError struct {
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf(
		"room %v is not available from %v to %v",
		e.RoomNumber,
		e.CheckIn.Format(time.DateOnly),
		e.CheckOut.Format(time.DateOnly),
	)
}

func IsRoomUnavailableError(err error) *RoomUnavailableError {
	if err == nil {
		return nil
	}

	var unavailableErr *RoomUnavailableError

	if errors.As(err, &unavailableErr) {
		return unavailableErr
	}

	return nil
}
