package guestservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"royalstay/internal/guest"
)

var ErrNextID = errors.New("get next id from generator")

type idGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Type int

const (
	Housekeeping Type = iota
	RoomService
	Maintenance
	Transportation
	Concierge
	WakeUpCall
	Laundry
)

func (t Type) String() string {
	switch t {
	case Housekeeping:
		return "Housekeeping"
	case RoomService:
		return "Room Service"
	case Maintenance:
		return "Maintenance"
	case Transportation:
		return "Transportation"
	case Concierge:
		return "Concierge"
	case WakeUpCall:
		return "Wake-up Call"
	case Laundry:
		return "Laundry"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

type Status int

const (
	StatusRequested Status = iota
	StatusAssigned
	StatusInProgress
	StatusCompleted
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusRequested:
		return "Requested"
	case StatusAssigned:
		return "Assigned"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Ticket is a guest's service request for a room.
type Ticket struct {
	id            string
	guest         *guest.Guest
	roomNumber    int
	serviceType   Type
	description   string
	requestedAt   time.Time
	status        Status
	assignedStaff string
	completedAt   time.Time
}

func NewTicket(
	ctx context.Context,
	idGen idGenerator,
	g *guest.Guest,
	roomNumber int,
	serviceType Type,
	description string,
) (*Ticket, error) {
	id, err := idGen.NewID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	//nolint:exhaustruct
	return &Ticket{
		id:          id,
		guest:       g,
		roomNumber:  roomNumber,
		serviceType: serviceType,
		description: description,
		requestedAt: time.Now().UTC(),
		status:      StatusRequested,
	}, nil
}

// SetStatus moves the ticket to the given status. Completion stamps the
// completion time.
func (t *Ticket) SetStatus(status Status) {
	t.status = status

	if status == StatusCompleted {
		t.completedAt = time.Now().UTC()
	}
}

// AssignStaff records the assignee and moves the ticket to Assigned.
func (t *Ticket) AssignStaff(name string) {
	t.assignedStaff = name
	t.SetStatus(StatusAssigned)
}

// Complete marks the ticket completed. Completing an already-completed ticket
// is a no-op returning false.
func (t *Ticket) Complete() bool {
	if t.status == StatusCompleted {
		return false
	}

	t.SetStatus(StatusCompleted)

	return true
}

// Cancel withdraws the request. Completed tickets cannot be canceled; that
// case is a no-op returning false.
func (t *Ticket) Cancel() bool {
	if t.status == StatusCompleted {
		return false
	}

	t.SetStatus(StatusCanceled)

	return true
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Guest() *guest.Guest {
	return t.guest
}

func (t *Ticket) RoomNumber() int {
	return t.roomNumber
}

func (t *Ticket) ServiceType() Type {
	return t.serviceType
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) RequestedAt() time.Time {
	return t.requestedAt
}

func (t *Ticket) Status() Status {
	return t.status
}

func (t *Ticket) AssignedStaff() string {
	return t.assignedStaff
}

// CompletedAt returns the completion time; the zero time means the ticket has
// not been completed.
func (t *Ticket) CompletedAt() time.Time {
	return t.completedAt
}

func (t *Ticket) String() string {
	assigned := "Not assigned"
	if t.assignedStaff != "" {
		assigned = fmt.Sprintf("Assigned to: %s", t.assignedStaff)
	}

	completion := "Not completed"
	if !t.completedAt.IsZero() {
		completion = fmt.Sprintf("Completed at: %s", t.completedAt.Format(time.DateTime))
	}

	return fmt.Sprintf(
		"Service ID: %s, Type: %s, Room: %d, Status: %s, %s, %s",
		t.id,
		t.serviceType,
		t.roomNumber,
		t.status,
		assigned,
		completion,
	)
}
