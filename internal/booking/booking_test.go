package booking_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"royalstay/internal/booking"
	"royalstay/internal/hotel"
	"royalstay/internal/idgen/simple"
	"royalstay/internal/logger"
)

type fakeGuest struct {
	notified []*booking.Booking
}

func (f *fakeGuest) AddReservation(b *booking.Booking) bool {
	for _, existing := range f.notified {
		if existing.ID() == b.ID() {
			return false
		}
	}

	f.notified = append(f.notified, b)

	return true
}

func (f *fakeGuest) Name() string { return "John Smith" }

func (f *fakeGuest) Email() string { return "john.smith@email.com" }

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func newDesk(t *testing.T) *booking.Desk {
	t.Helper()

	return booking.New(logger.New(io.Discard), simple.New("bk"), nil)
}

func newRoom(t *testing.T, number int, price float64) *hotel.Room {
	t.Helper()

	room, err := hotel.NewRoom(number, hotel.Single, nil, price)
	require.NoError(t, err)

	return room
}

func openBooking(t *testing.T, guest booking.GuestAccount, checkIn, checkOut time.Time) *booking.Booking {
	t.Helper()

	b, err := newDesk(t).Open(context.Background(), guest, checkIn, checkOut)
	require.NoError(t, err)

	return b
}

func TestDeskOpen(t *testing.T) {
	desk := newDesk(t)

	b, err := desk.Open(context.Background(), &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 8))
	require.NoError(t, err)
	assert.Equal(t, "bk-1", b.ID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Empty(t, b.Rooms())
	assert.Equal(t, 3, b.Nights())
}

func TestDeskOpenInvalidRange(t *testing.T) {
	desk := newDesk(t)

	_, err := desk.Open(context.Background(), &fakeGuest{}, date(2026, 9, 8), date(2026, 9, 5))
	assert.NotNil(t, hotel.IsInvalidRangeError(err))

	_, err = desk.Open(context.Background(), nil, date(2026, 9, 5), date(2026, 9, 8))
	assert.ErrorIs(t, err, booking.ErrNoGuest)
}

func TestBookingTotalCost(t *testing.T) {
	// $150/night over 3 nights.
	b := openBooking(t, &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 8))
	require.NoError(t, b.AddRoom(newRoom(t, 201, 150.0)))

	assert.InDelta(t, 450.0, b.TotalCost(), 0.001)
	// Recomputation without mutation is idempotent.
	assert.InDelta(t, 450.0, b.TotalCost(), 0.001)
}

func TestBookingTotalCostMultipleRooms(t *testing.T) {
	// $100 + $150 per night over 5 nights.
	b := openBooking(t, &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 10))
	require.NoError(t, b.AddRoom(newRoom(t, 101, 100.0)))
	require.NoError(t, b.AddRoom(newRoom(t, 201, 150.0)))

	assert.InDelta(t, 1250.0, b.TotalCost(), 0.001)
}

func TestBookingNightsTruncatesFractionalDays(t *testing.T) {
	checkIn := date(2026, 9, 5).Add(10 * time.Hour)
	checkOut := date(2026, 9, 8).Add(14 * time.Hour)

	b := openBooking(t, &fakeGuest{}, checkIn, checkOut)
	require.NoError(t, b.AddRoom(newRoom(t, 101, 100.0)))

	assert.Equal(t, 3, b.Nights())
	assert.InDelta(t, 300.0, b.TotalCost(), 0.001)
}

func TestBookingAddRoomUnavailable(t *testing.T) {
	room := newRoom(t, 101, 100.0)
	require.NoError(t, room.Reserve(date(2026, 9, 5), date(2026, 9, 8)))

	// [7, 10) overlaps the reserved [5, 8) at day 7.
	b := openBooking(t, &fakeGuest{}, date(2026, 9, 7), date(2026, 9, 10))
	err := b.AddRoom(room)
	require.NotNil(t, hotel.IsRoomUnavailableError(err))
	assert.Empty(t, b.Rooms())
	assert.InDelta(t, 0.0, b.TotalCost(), 0.001)

	// [8, 10) touches the reserved stay without overlapping it.
	touching := openBooking(t, &fakeGuest{}, date(2026, 9, 8), date(2026, 9, 10))
	require.NoError(t, touching.AddRoom(room))
}

func TestBookingAddRoomReservesLedger(t *testing.T) {
	room := newRoom(t, 101, 100.0)

	b := openBooking(t, &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 8))
	require.NoError(t, b.AddRoom(room))

	require.Len(t, room.Reservations(), 1)

	available, err := room.IsAvailable(date(2026, 9, 6), date(2026, 9, 7))
	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingRemoveRoom(t *testing.T) {
	roomA := newRoom(t, 101, 100.0)
	roomB := newRoom(t, 201, 150.0)

	b := openBooking(t, &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 10))
	require.NoError(t, b.AddRoom(roomA))
	require.NoError(t, b.AddRoom(roomB))

	assert.True(t, b.RemoveRoom(roomA))
	assert.Len(t, b.Rooms(), 1)
	assert.InDelta(t, 750.0, b.TotalCost(), 0.001)

	// Removing again is a non-exceptional no-op.
	assert.False(t, b.RemoveRoom(roomA))

	// The ledger keeps the reserved interval; removal does not release it.
	available, err := roomA.IsAvailable(date(2026, 9, 5), date(2026, 9, 10))
	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingConfirm(t *testing.T) {
	guest := &fakeGuest{}

	b := openBooking(t, guest, date(2026, 9, 5), date(2026, 9, 8))

	assert.ErrorIs(t, b.Confirm(), booking.ErrEmptyBooking)
	assert.Equal(t, booking.StatusPending, b.Status())

	require.NoError(t, b.AddRoom(newRoom(t, 101, 100.0)))
	require.NoError(t, b.Confirm())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Len(t, guest.notified, 1)

	// Re-confirming re-notifies; the history de-duplicates.
	require.NoError(t, b.Confirm())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Len(t, guest.notified, 1)
}

func TestBookingCancel(t *testing.T) {
	room := newRoom(t, 101, 100.0)

	b := openBooking(t, &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 8))
	require.NoError(t, b.AddRoom(room))
	require.NoError(t, b.Confirm())

	assert.True(t, b.Cancel())
	assert.Equal(t, booking.StatusCanceled, b.Status())

	// Second cancel is a non-exceptional no-op.
	assert.False(t, b.Cancel())
	assert.Equal(t, booking.StatusCanceled, b.Status())

	// Cancellation does not free the room's dates.
	available, err := room.IsAvailable(date(2026, 9, 5), date(2026, 9, 8))
	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingConfirmCanceled(t *testing.T) {
	guest := &fakeGuest{}

	b := openBooking(t, guest, date(2026, 9, 5), date(2026, 9, 8))
	require.NoError(t, b.AddRoom(newRoom(t, 101, 100.0)))
	require.NoError(t, b.Confirm())
	require.True(t, b.Cancel())

	// Canceled is terminal; confirming again must not resurrect the booking.
	assert.ErrorIs(t, b.Confirm(), booking.ErrCanceledBooking)
	assert.Equal(t, booking.StatusCanceled, b.Status())
	assert.Len(t, guest.notified, 1)
}

func TestBookingCancelPending(t *testing.T) {
	b := openBooking(t, &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 8))

	assert.True(t, b.Cancel())
	assert.Equal(t, booking.StatusCanceled, b.Status())
}

func TestDeskBook(t *testing.T) {
	guest := &fakeGuest{}
	desk := newDesk(t)

	b, err := desk.Book(
		context.Background(),
		guest,
		date(2026, 9, 5),
		date(2026, 9, 10),
		newRoom(t, 101, 100.0),
		newRoom(t, 201, 150.0),
	)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.InDelta(t, 1250.0, b.TotalCost(), 0.001)
	assert.Len(t, guest.notified, 1)
}

func TestDeskBookUnavailableRoom(t *testing.T) {
	room := newRoom(t, 101, 100.0)
	require.NoError(t, room.Reserve(date(2026, 9, 5), date(2026, 9, 8)))

	_, err := newDesk(t).Book(context.Background(), &fakeGuest{}, date(2026, 9, 7), date(2026, 9, 10), room)
	assert.NotNil(t, hotel.IsRoomUnavailableError(err))
}
