package app

import (
	"context"
	"fmt"
	"time"

	"royalstay/internal/booking"
	"royalstay/internal/config"
	"royalstay/internal/feedback"
	"royalstay/internal/guestservice"
	"royalstay/internal/hotel"
	"royalstay/internal/idgen/random"
	"royalstay/internal/logger"
	"royalstay/internal/migration"
	"royalstay/internal/payment"
	"royalstay/internal/promo"
	"royalstay/internal/storage/memory"
)

// Run walks the full booking lifecycle against seeded demo data: search,
// book, pay, invoice, service request, feedback.
func Run(l *logger.Logger) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l.SetLevel(cfg.LogLevel)
	l.LogInfo("Welcome to %v", cfg.HotelName)

	inventory := hotel.NewInventory()
	db := memory.New(memory.Config{L: l})

	if err := migration.Up(l, inventory, db); err != nil {
		return fmt.Errorf("up demo migration: %w", err)
	}

	idGen := random.New()
	desk := booking.New(l, idGen, nil)

	checkIn := time.Now().UTC().AddDate(0, 0, cfg.DemoLeadDays)
	checkOut := checkIn.AddDate(0, 0, cfg.DemoStayDays)

	available, err := inventory.FindAvailable(checkIn, checkOut, 200) //nolint:gomnd
	if err != nil {
		return fmt.Errorf("find available rooms: %w", err)
	}

	l.LogInfo("Found %d rooms under $200 for %v to %v", len(available), checkIn.Format(time.DateOnly), checkOut.Format(time.DateOnly))

	guest1, err := db.Guest(1)
	if err != nil {
		return fmt.Errorf("load demo guest: %w", err)
	}

	guest1.LoyaltyProgram().EarnPoints(5000) //nolint:gomnd
	l.LogInfo("%v", guest1.LoyaltyProgram())

	single, err := inventory.Room(101) //nolint:gomnd
	if err != nil {
		return fmt.Errorf("load room: %w", err)
	}

	double, err := inventory.Room(201) //nolint:gomnd
	if err != nil {
		return fmt.Errorf("load room: %w", err)
	}

	confirmed, err := desk.Book(ctx, guest1, checkIn, checkOut, single, double)
	if err != nil {
		return fmt.Errorf("book rooms: %w", err)
	}

	// Overlapping request for an already-booked room must be rejected.
	guest2, err := db.Guest(2)
	if err != nil {
		return fmt.Errorf("load demo guest: %w", err)
	}

	if _, err := desk.Book(ctx, guest2, checkIn.AddDate(0, 0, 1), checkOut.AddDate(0, 0, 1), single); err != nil {
		if unavailableErr := hotel.IsRoomUnavailableError(err); unavailableErr != nil {
			l.LogInfo("Overlapping booking rejected: %v", unavailableErr)
		} else {
			return fmt.Errorf("book overlapping stay: %w", err)
		}
	}

	promos := promo.NewManager()
	promos.Register(promo.Code{
		Code:               "WELCOME10",
		DiscountPercentage: 10,                                    //nolint:gomnd
		ValidThrough:       time.Now().UTC().AddDate(0, 0, 30), //nolint:gomnd
	})

	strategies := promos.ActiveStrategies(time.Now().UTC())
	strategies = append(strategies, &promo.LoyaltyRedemption{
		Program: guest1.LoyaltyProgram(),
		Points:  500, //nolint:gomnd
	})

	pay, err := payment.New(ctx, idGen, confirmed, confirmed.TotalCost(), payment.CreditCard, strategies...)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	if err := pay.Process(); err != nil {
		return fmt.Errorf("process payment: %w", err)
	}

	l.LogInfo("%v", pay)

	inv, err := pay.GenerateInvoice()
	if err != nil {
		return fmt.Errorf("generate invoice: %w", err)
	}

	l.LogInfo("Invoice %v sent to %v:\n%v", inv.ID(), guest1.Email(), inv)

	ticket, err := guestservice.NewTicket(ctx, idGen, guest1, single.Number(), guestservice.Housekeeping, "Extra towels, please")
	if err != nil {
		return fmt.Errorf("create service ticket: %w", err)
	}

	if err := db.SaveTicket(ticket); err != nil {
		return fmt.Errorf("save service ticket: %w", err)
	}

	ticket.AssignStaff("Maria Lopez")
	ticket.Complete()
	l.LogInfo("%v", ticket)

	review, err := feedback.New(ctx, idGen, guest1, confirmed, 5, "Lovely stay") //nolint:gomnd
	if err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}

	if err := review.RateExperience(5, 4, 5, 4, 5); err != nil { //nolint:gomnd
		return fmt.Errorf("rate experience: %w", err)
	}

	if err := db.SaveFeedback(review); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}

	l.LogInfo("%v", review)

	if confirmed.Cancel() {
		l.LogInfo("Booking %v canceled; reserved dates remain blocked", confirmed.ID())
	}

	return nil
}
