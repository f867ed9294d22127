package memory

import (
	"fmt"
	"sort"
	"sync"

	"royalstay/internal/feedback"
	"royalstay/internal/guest"
	"royalstay/internal/guestservice"
	"royalstay/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB is the hotel's in-memory registry: the guest directory, the feedback
// store, and the service ticket tracker. Unlike the booking core, the
// registry may be shared across callers, so access is mutex-guarded.
type DB struct {
	mu       sync.Mutex
	l        *logger.Logger
	guests   map[int]*guest.Guest
	feedback map[string]*feedback.Feedback
	tickets  map[string]*guestservice.Ticket
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:        conf.L,
		guests:   make(map[int]*guest.Guest),
		feedback: make(map[string]*feedback.Feedback),
		tickets:  make(map[string]*guestservice.Ticket),
	}
}

func (db *DB) SaveGuest(g *guest.Guest) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.guests[g.ID()]; exists {
		return fmt.Errorf("guest %d: %w", g.ID(), ErrDuplicateID)
	}

	db.guests[g.ID()] = g

	return nil
}

func (db *DB) Guest(id int) (*guest.Guest, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	g, exists := db.guests[id]
	if !exists {
		return nil, fmt.Errorf("guest %d: %w", id, ErrRecordNotFound)
	}

	return g, nil
}

func (db *DB) Guests() []*guest.Guest {
	db.mu.Lock()
	defer db.mu.Unlock()

	guests := make([]*guest.Guest, 0, len(db.guests))

	for _, g := range db.guests {
		guests = append(guests, g)
	}

	sort.Slice(guests, func(i, j int) bool { return guests[i].ID() < guests[j].ID() })

	return guests
}

func (db *DB) SaveFeedback(f *feedback.Feedback) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.feedback[f.ID()]; exists {
		return fmt.Errorf("feedback %s: %w", f.ID(), ErrDuplicateID)
	}

	db.feedback[f.ID()] = f

	return nil
}

func (db *DB) FeedbackForBooking(bookingID string) []*feedback.Feedback {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []*feedback.Feedback

	for _, f := range db.feedback {
		if f.Booking().ID() == bookingID {
			result = append(result, f)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })

	return result
}

func (db *DB) FeedbackForGuest(guestID int) []*feedback.Feedback {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []*feedback.Feedback

	for _, f := range db.feedback {
		if f.Guest().ID() == guestID {
			result = append(result, f)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })

	return result
}

func (db *DB) SaveTicket(t *guestservice.Ticket) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.tickets[t.ID()]; exists {
		return fmt.Errorf("ticket %s: %w", t.ID(), ErrDuplicateID)
	}

	db.tickets[t.ID()] = t

	return nil
}

func (db *DB) Ticket(id string) (*guestservice.Ticket, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, exists := db.tickets[id]
	if !exists {
		return nil, fmt.Errorf("ticket %s: %w", id, ErrRecordNotFound)
	}

	return t, nil
}

// OpenTickets returns tickets that are neither completed nor canceled,
// ordered by ID.
func (db *DB) OpenTickets() []*guestservice.Ticket {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []*guestservice.Ticket

	for _, t := range db.tickets {
		if t.Status() == guestservice.StatusCompleted || t.Status() == guestservice.StatusCanceled {
			continue
		}

		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })

	return result
}
