package promo

import (
	"errors"
	"fmt"
	"time"

	"royalstay/internal/loyalty"
	"royalstay/internal/payment"
)

var ErrCodeExpired = errors.New("promo code expired")

// Code discounts a payment by a percentage while the code is valid.
type Code struct {
	Code               string
	DiscountPercentage float64
	ValidThrough       time.Time
}

func (c *Code) Apply(p *payment.Payment) error {
	if time.Now().UTC().After(c.ValidThrough) {
		return fmt.Errorf("promo code %s: %w", c.Code, ErrCodeExpired)
	}

	discount := p.Amount() * c.DiscountPercentage / 100 //nolint:gomnd

	if _, err := p.ApplyDiscount(discount); err != nil {
		return fmt.Errorf("apply promo code %s: %w", c.Code, err)
	}

	return nil
}

// LoyaltyRedemption burns points from a member's program and discounts the
// payment by their monetary value.
type LoyaltyRedemption struct {
	Program *loyalty.Program
	Points  int
}

func (l *LoyaltyRedemption) Apply(p *payment.Payment) error {
	value, err := l.Program.RedeemPoints(l.Points)
	if err != nil {
		return fmt.Errorf("redeem %d points for member %d: %w", l.Points, l.Program.MemberID(), err)
	}

	if _, err := p.ApplyDiscount(value); err != nil {
		return fmt.Errorf("apply loyalty redemption for member %d: %w", l.Program.MemberID(), err)
	}

	return nil
}

// Manager keeps the hotel's registered promo codes and hands out the ones
// still valid.
type Manager struct {
	codes []Code
}

func NewManager() *Manager {
	//nolint:exhaustruct
	return &Manager{}
}

func (m *Manager) Register(code Code) {
	m.codes = append(m.codes, code)
}

// ActiveStrategies returns the unexpired codes as discount strategies. Each
// strategy is a copy, detached from the manager's registry.
func (m *Manager) ActiveStrategies(now time.Time) []payment.DiscountStrategy {
	var strategies []payment.DiscountStrategy

	for idx := range m.codes {
		if now.After(m.codes[idx].ValidThrough) {
			continue
		}

		code := m.codes[idx]
		strategies = append(strategies, &code)
	}

	return strategies
}
