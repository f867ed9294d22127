package booking

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"royalstay/internal/hotel"
	"royalstay/internal/logger"
)

type idGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Desk opens booking aggregates. It owns the cross-cutting pieces the
// aggregate should not carry itself: ID generation, logging, and tracing.
type Desk struct {
	l      *logger.Logger
	idGen  idGenerator
	tracer trace.Tracer
}

func New(l *logger.Logger, idGen idGenerator, tracer trace.Tracer) *Desk {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("booking")
	}

	return &Desk{
		l:      l,
		idGen:  idGen,
		tracer: tracer,
	}
}

// Open creates a pending booking for the guest and stay. Rooms are attached
// afterwards through AddRoom.
func (d *Desk) Open(ctx context.Context, guest GuestAccount, checkIn, checkOut time.Time) (*Booking, error) {
	ctx, span := d.tracer.Start(ctx, "desk.open")
	defer span.End()

	if guest == nil {
		return nil, ErrNoGuest
	}

	if err := hotel.ValidateStayRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	id, err := d.idGen.NewID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	//nolint:exhaustruct
	b := &Booking{
		id:       id,
		guest:    guest,
		checkIn:  checkIn,
		checkOut: checkOut,
		status:   StatusPending,
	}

	d.l.LogInfo(
		"Booking %v opened for %v (%v to %v)%v",
		b.id,
		guest.Name(),
		checkIn.Format(time.DateOnly),
		checkOut.Format(time.DateOnly),
		traceSuffix(ctx),
	)

	return b, nil
}

// Book is the one-call path: open a booking, attach every room, confirm.
func (d *Desk) Book(ctx context.Context, guest GuestAccount, checkIn, checkOut time.Time, rooms ...*hotel.Room) (*Booking, error) {
	ctx, span := d.tracer.Start(ctx, "desk.book")
	defer span.End()

	b, err := d.Open(ctx, guest, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("open booking: %w", err)
	}

	for _, room := range rooms {
		if err := b.AddRoom(room); err != nil {
			return nil, fmt.Errorf("add room %d to booking %s: %w", room.Number(), b.ID(), err)
		}
	}

	if err := b.Confirm(); err != nil {
		return nil, fmt.Errorf("confirm booking %s: %w", b.ID(), err)
	}

	d.l.LogInfo("Booking %v confirmed for %v, total $%.2f%v", b.ID(), guest.Name(), b.TotalCost(), traceSuffix(ctx))

	return b, nil
}

func traceSuffix(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}

	return fmt.Sprintf(", traceID: %s", sc.TraceID())
}
