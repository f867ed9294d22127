package guest

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"royalstay/internal/booking"
	"royalstay/internal/loyalty"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type profile struct {
	Name    string `validate:"required"`
	Contact string `validate:"required"`
	Email   string `validate:"required,email"`
}

// Guest holds a profile and the guest's reservation history. The history
// keeps non-owning references used for enumeration; bookings are owned by
// whoever created them.
type Guest struct {
	id           int
	name         string
	contact      string
	email        string
	program      *loyalty.Program
	reservations []*booking.Booking
}

func New(id int, name, contact, email string) (*Guest, error) {
	if err := validate.Struct(profile{Name: name, Contact: contact, Email: email}); err != nil {
		return nil, fmt.Errorf("validate guest profile: %w", err)
	}

	//nolint:exhaustruct
	return &Guest{
		id:      id,
		name:    name,
		contact: contact,
		email:   email,
	}, nil
}

// UpdateProfile overwrites the fields that are non-empty and keeps the rest.
func (g *Guest) UpdateProfile(name, contact, email string) error {
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return fmt.Errorf("validate guest email: %w", err)
		}
	}

	if name != "" {
		g.name = name
	}

	if contact != "" {
		g.contact = contact
	}

	if email != "" {
		g.email = email
	}

	return nil
}

// AddReservation records the booking in the guest's history. Repeated
// notifications for the same booking are de-duplicated by ID; the return
// value reports whether the history grew.
func (g *Guest) AddReservation(b *booking.Booking) bool {
	for _, existing := range g.reservations {
		if existing.ID() == b.ID() {
			return false
		}
	}

	g.reservations = append(g.reservations, b)

	return true
}

func (g *Guest) Reservations() []*booking.Booking {
	return append([]*booking.Booking(nil), g.reservations...)
}

func (g *Guest) SetLoyaltyProgram(p *loyalty.Program) {
	g.program = p
}

func (g *Guest) LoyaltyProgram() *loyalty.Program {
	return g.program
}

func (g *Guest) ID() int {
	return g.id
}

func (g *Guest) Name() string {
	return g.name
}

func (g *Guest) Contact() string {
	return g.contact
}

func (g *Guest) Email() string {
	return g.email
}

func (g *Guest) String() string {
	return fmt.Sprintf("Guest ID: %d, Name: %s, Contact: %s, Email: %s", g.id, g.name, g.contact, g.email)
}
