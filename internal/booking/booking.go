package booking

import (
	"fmt"
	"time"

	"royalstay/internal/hotel"
)

type Status int

const (
	StatusPending Status = iota
	StatusConfirmed
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// GuestAccount is the slice of a guest the aggregate needs: an identity for
// display and a reservation history to notify on confirmation.
type GuestAccount interface {
	AddReservation(b *Booking) bool
	Name() string
	Email() string
}

// Booking groups one guest's stay across one or more rooms and drives it
// through the pending/confirmed/canceled lifecycle. Room membership and the
// derived total cost always move together.
type Booking struct {
	id        string
	guest     GuestAccount
	checkIn   time.Time
	checkOut  time.Time
	rooms     []*hotel.Room
	totalCost float64
	status    Status
}

// AddRoom reserves the booking's stay on the room and attaches it. The room's
// ledger re-checks availability inside Reserve, so a stale read here cannot
// double-book.
func (b *Booking) AddRoom(room *hotel.Room) error {
	available, err := room.IsAvailable(b.checkIn, b.checkOut)
	if err != nil {
		return err
	}

	if !available {
		return &hotel.RoomUnavailableError{RoomNumber: room.Number(), CheckIn: b.checkIn, CheckOut: b.checkOut}
	}

	if err := room.Reserve(b.checkIn, b.checkOut); err != nil {
		return err
	}

	b.rooms = append(b.rooms, room)
	b.recomputeTotalCost()

	return nil
}

// RemoveRoom detaches the room and recomputes the total cost. It reports
// false when the room was never part of this booking. The room's reserved
// interval stays in its ledger; the ledger has no release operation.
func (b *Booking) RemoveRoom(room *hotel.Room) bool {
	for idx, attached := range b.rooms {
		if attached.Number() != room.Number() {
			continue
		}

		b.rooms = append(b.rooms[:idx], b.rooms[idx+1:]...)
		b.recomputeTotalCost()

		return true
	}

	return false
}

// Confirm finalizes the booking and registers it in the guest's reservation
// history. Repeated confirms re-notify the history, which de-duplicates.
// Canceled is terminal: a canceled booking cannot be confirmed again.
func (b *Booking) Confirm() error {
	if b.status == StatusCanceled {
		return ErrCanceledBooking
	}

	if len(b.rooms) == 0 {
		return ErrEmptyBooking
	}

	b.status = StatusConfirmed
	b.guest.AddReservation(b)

	return nil
}

// Cancel flips the booking to canceled and reports whether anything changed.
// Canceling an already-canceled booking is a no-op returning false. Reserved
// intervals remain in the room ledgers.
func (b *Booking) Cancel() bool {
	if b.status == StatusCanceled {
		return false
	}

	b.status = StatusCanceled

	return true
}

// TotalCost recomputes nights times the sum of attached nightly prices.
func (b *Booking) TotalCost() float64 {
	b.recomputeTotalCost()

	return b.totalCost
}

// Nights counts whole 24-hour periods between check-in and check-out,
// truncating toward zero. A stay billed by day count, not fractional nights.
func (b *Booking) Nights() int {
	return int(b.checkOut.Sub(b.checkIn).Hours() / 24) //nolint:gomnd
}

func (b *Booking) recomputeTotalCost() {
	nights := b.Nights()

	var total float64

	for _, room := range b.rooms {
		total += room.PricePerNight() * float64(nights)
	}

	b.totalCost = total
}

func (b *Booking) ID() string {
	return b.id
}

func (b *Booking) Guest() GuestAccount {
	return b.guest
}

func (b *Booking) CheckIn() time.Time {
	return b.checkIn
}

func (b *Booking) CheckOut() time.Time {
	return b.checkOut
}

// Rooms returns the attached rooms in insertion order, which is also the
// display and billing order.
func (b *Booking) Rooms() []*hotel.Room {
	return append([]*hotel.Room(nil), b.rooms...)
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) String() string {
	return fmt.Sprintf(
		"Booking ID: %s, Guest: %s, Check-in: %s, Check-out: %s, Rooms: %d, Total: $%.2f, Status: %s",
		b.id,
		b.guest.Name(),
		b.checkIn.Format(time.DateOnly),
		b.checkOut.Format(time.DateOnly),
		len(b.rooms),
		b.totalCost,
		b.status,
	)
}
