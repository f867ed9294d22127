package invoice

import (
	"fmt"
	"strings"
	"time"

	"royalstay/internal/booking"
)

// Payment is the slice of a settled payment the invoice references.
type Payment interface {
	ID() string
	Amount() float64
}

type LineItem struct {
	Description string
	Amount      float64
}

// Invoice itemizes a booking's charges. Line items for the attached rooms are
// generated at construction, in the booking's room order.
type Invoice struct {
	id       string
	booking  *booking.Booking
	payment  Payment
	issuedAt time.Time
	dueAt    time.Time
	items    []LineItem
}

func New(id string, b *booking.Booking, p Payment) *Invoice {
	issuedAt := time.Now().UTC()

	//nolint:exhaustruct
	inv := &Invoice{
		id:       id,
		booking:  b,
		payment:  p,
		issuedAt: issuedAt,
		// Hotel bookings are settled immediately.
		dueAt: issuedAt,
	}

	inv.generateLineItems()

	return inv
}

func (i *Invoice) generateLineItems() {
	nights := i.booking.Nights()

	for _, room := range i.booking.Rooms() {
		i.items = append(i.items, LineItem{
			Description: fmt.Sprintf("Room %d (%s) - %d nights", room.Number(), room.Type(), nights),
			Amount:      room.PricePerNight() * float64(nights),
		})
	}
}

func (i *Invoice) AddItem(description string, amount float64) {
	i.items = append(i.items, LineItem{Description: description, Amount: amount})
}

func (i *Invoice) Total() float64 {
	var total float64

	for _, item := range i.items {
		total += item.Amount
	}

	return total
}

func (i *Invoice) ID() string {
	return i.id
}

func (i *Invoice) Booking() *booking.Booking {
	return i.booking
}

func (i *Invoice) Payment() Payment {
	return i.payment
}

func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}

func (i *Invoice) DueAt() time.Time {
	return i.dueAt
}

func (i *Invoice) Items() []LineItem {
	return append([]LineItem(nil), i.items...)
}

func (i *Invoice) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Invoice ID: %s\n", i.id)
	fmt.Fprintf(&sb, "Issue Date: %s\n", i.issuedAt.Format(time.DateOnly))
	fmt.Fprintf(&sb, "Guest: %s\n", i.booking.Guest().Name())
	fmt.Fprintf(&sb, "Booking ID: %s\n", i.booking.ID())
	fmt.Fprintf(&sb, "Check-in: %s\n", i.booking.CheckIn().Format(time.DateOnly))
	fmt.Fprintf(&sb, "Check-out: %s\n", i.booking.CheckOut().Format(time.DateOnly))
	sb.WriteString("\nItems:\n")

	for _, item := range i.items {
		fmt.Fprintf(&sb, "- %s: $%.2f\n", item.Description, item.Amount)
	}

	fmt.Fprintf(&sb, "\nTotal Amount: $%.2f", i.Total())

	return sb.String()
}
