package loyalty

import (
	"errors"
	"fmt"
)

var ErrInsufficientPoints = errors.New("insufficient points for redemption")

// One point is earned per currency unit spent; one point redeems for $0.10.
const redemptionRate = 0.10

type Tier int

const (
	Bronze Tier = iota
	Silver
	Gold
	Platinum
)

func (t Tier) String() string {
	switch t {
	case Bronze:
		return "Bronze"
	case Silver:
		return "Silver"
	case Gold:
		return "Gold"
	case Platinum:
		return "Platinum"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Ordered descending so the first matching threshold wins.
var tierThresholds = []struct {
	tier Tier
	min  int
}{
	{Platinum, 10000},
	{Gold, 5000},
	{Silver, 1000},
	{Bronze, 0},
}

// Program tracks a member's point balance and tier. The tier is derived from
// the balance and recomputed on every change.
type Program struct {
	memberID int
	points   int
	tier     Tier
}

func NewProgram(memberID int) *Program {
	//nolint:exhaustruct
	return &Program{memberID: memberID, tier: Bronze}
}

// EarnPoints credits one point per currency unit of the stay value and
// returns the points earned.
func (p *Program) EarnPoints(stayValue float64) int {
	earned := int(stayValue)
	p.points += earned
	p.updateTier()

	return earned
}

// RedeemPoints burns points and returns their monetary value.
func (p *Program) RedeemPoints(points int) (float64, error) {
	if points > p.points {
		return 0, ErrInsufficientPoints
	}

	p.points -= points
	p.updateTier()

	return float64(points) * redemptionRate, nil
}

func (p *Program) updateTier() {
	for _, threshold := range tierThresholds {
		if p.points >= threshold.min {
			p.tier = threshold.tier

			return
		}
	}
}

func (p *Program) MemberID() int {
	return p.memberID
}

func (p *Program) Points() int {
	return p.points
}

func (p *Program) Tier() Tier {
	return p.tier
}

func (p *Program) String() string {
	return fmt.Sprintf("Loyalty Program - Member ID: %d, Points: %d, Tier: %s", p.memberID, p.points, p.tier)
}
