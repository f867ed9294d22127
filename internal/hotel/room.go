package hotel

import (
	"fmt"
	"strings"
	"time"
)

type RoomType int

const (
	Single RoomType = iota
	Double
	Suite
	Deluxe
)

func (t RoomType) String() string {
	switch t {
	case Single:
		return "Single Room"
	case Double:
		return "Double Room"
	case Suite:
		return "Suite"
	case Deluxe:
		return "Deluxe Room"
	default:
		return fmt.Sprintf("RoomType(%d)", int(t))
	}
}

// Stay is a half-open [CheckIn, CheckOut) interval: the check-out day itself
// is not occupied, so a stay ending on a given day touches, but does not
// overlap, a stay starting on that day.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ValidateStayRange rejects ranges whose check-in is not strictly before the
// check-out.
func ValidateStayRange(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return &InvalidRangeError{CheckIn: checkIn, CheckOut: checkOut}
	}

	return nil
}

// Room keeps a hotel room's static attributes together with the ledger of
// stays accepted for it. Reserved intervals only accumulate; there is no
// release operation, so a stay blocks its dates for the room's lifetime.
type Room struct {
	number         int
	roomType       RoomType
	amenities      []string
	pricePerNight  float64
	adminAvailable bool
	reserved       []Stay
}

func NewRoom(number int, roomType RoomType, amenities []string, pricePerNight float64) (*Room, error) {
	if pricePerNight < 0 {
		return nil, ErrNegativePrice
	}

	//nolint:exhaustruct
	return &Room{
		number:         number,
		roomType:       roomType,
		amenities:      append([]string(nil), amenities...),
		pricePerNight:  pricePerNight,
		adminAvailable: true,
	}, nil
}

// IsAvailable reports whether no accepted stay overlaps [checkIn, checkOut).
// The scan is linear; the ledger holds one hotel's bookings for one room.
func (r *Room) IsAvailable(checkIn, checkOut time.Time) (bool, error) {
	if err := ValidateStayRange(checkIn, checkOut); err != nil {
		return false, err
	}

	for _, stay := range r.reserved {
		if stay.CheckIn.Before(checkOut) && stay.CheckOut.After(checkIn) {
			return false, nil
		}
	}

	return true, nil
}

// Reserve accepts the stay and records it in the ledger. Availability is
// re-checked inside this call rather than trusted from a prior query.
func (r *Room) Reserve(checkIn, checkOut time.Time) error {
	available, err := r.IsAvailable(checkIn, checkOut)
	if err != nil {
		return err
	}

	if !available {
		return &RoomUnavailableError{RoomNumber: r.number, CheckIn: checkIn, CheckOut: checkOut}
	}

	r.reserved = append(r.reserved, Stay{CheckIn: checkIn, CheckOut: checkOut})

	return nil
}

// SetAdministrativeAvailability flips the display-only availability flag. It
// does not interact with the reservation ledger.
func (r *Room) SetAdministrativeAvailability(available bool) {
	r.adminAvailable = available
}

func (r *Room) Number() int {
	return r.number
}

func (r *Room) Type() RoomType {
	return r.roomType
}

func (r *Room) Amenities() []string {
	return append([]string(nil), r.amenities...)
}

func (r *Room) PricePerNight() float64 {
	return r.pricePerNight
}

func (r *Room) SetPricePerNight(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}

	r.pricePerNight = price

	return nil
}

func (r *Room) AdministrativelyAvailable() bool {
	return r.adminAvailable
}

func (r *Room) Reservations() []Stay {
	return append([]Stay(nil), r.reserved...)
}

func (r *Room) String() string {
	status := "Available"
	if !r.adminAvailable {
		status = "Not Available"
	}

	return fmt.Sprintf(
		"Room %d (%s) - $%.2f per night - Amenities: %s - Status: %s",
		r.number,
		r.roomType,
		r.pricePerNight,
		strings.Join(r.amenities, ", "),
		status,
	)
}
