package payment_test

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
	"royalstay/internal/payment"
)

type fakeGuest struct{}

func (f *fakeGuest) AddReservation(_ *booking.Booking) bool { return true }

func (f *fakeGuest) Name() string { return "John Smith" }

func (f *fakeGuest) Email() string { return "john.smith@email.com" }

type flatDiscount struct {
	amount float64
}

func (d *flatDiscount) Apply(p *payment.Payment) error {
	_, err := p.ApplyDiscount(d.amount)

	return err
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func confirmedBooking(t *testing.T) *booking.Booking {
	t.Helper()

	room, err := hotel.NewRoom(201, hotel.Double, nil, 150.0)
	require.NoError(t, err)

	desk := booking.New(logger.New(io.Discard), simple.New("bk"), nil)

	b, err := desk.Book(context.Background(), &fakeGuest{}, date(2026, 9, 5), date(2026, 9, 8), room)
	require.NoError(t, err)

	return b
}

func newPayment(t *testing.T, strategies ...payment.DiscountStrategy) *payment.Payment {
	t.Helper()

	b := confirmedBooking(t)

	p, err := payment.New(context.Background(), simple.New("pay"), b, b.TotalCost(), payment.CreditCard, strategies...)
	require.NoError(t, err)

	return p
}

func TestNewRejectsUnknownMethod(t *testing.T) {
	b := confirmedBooking(t)

	_, err := payment.New(context.Background(), simple.New("pay"), b, b.TotalCost(), payment.Method(99))
	assert.ErrorIs(t, err, payment.ErrUnknownMethod)
}

func TestNewRejectsNegativeAmount(t *testing.T) {
	b := confirmedBooking(t)

	_, err := payment.New(context.Background(), simple.New("pay"), b, -10, payment.Cash)
	assert.ErrorIs(t, err, payment.ErrNegativeAmount)
}

func TestNewAppliesStrategies(t *testing.T) {
	p := newPayment(t, &flatDiscount{amount: 50})

	assert.InDelta(t, 400.0, p.Amount(), 0.001)
}

func TestProcess(t *testing.T) {
	p := newPayment(t)
	require.False(t, p.Successful())
	require.True(t, p.TransactedAt().IsZero())

	require.NoError(t, p.Process())
	assert.True(t, p.Successful())
	assert.False(t, p.TransactedAt().IsZero())
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		discount float64
		want     float64
		wantErr  error
	}{
		{name: "valid discount", discount: 50, want: 400},
		{name: "full discount", discount: 450, want: 0},
		{name: "negative discount", discount: -1, want: 450, wantErr: payment.ErrNegativeDiscount},
		{name: "discount exceeds amount", discount: 451, want: 450, wantErr: payment.ErrDiscountExceedsAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPayment(t)

			amount, err := p.ApplyDiscount(tt.discount)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.InDelta(t, tt.want, amount, 0.001)
			assert.InDelta(t, tt.want, p.Amount(), 0.001)
		})
	}
}

func TestGenerateInvoice(t *testing.T) {
	p := newPayment(t)

	_, err := p.GenerateInvoice()
	require.ErrorIs(t, err, payment.ErrNotProcessed)

	require.NoError(t, p.Process())

	inv, err := p.GenerateInvoice()
	require.NoError(t, err)
	assert.Equal(t, p.ID(), inv.ID())
	assert.InDelta(t, 450.0, inv.Total(), 0.001)
}

func TestPaymentDetails(t *testing.T) {
	p := newPayment(t)

	_, ok := p.Detail("card_last_four")
	require.False(t, ok)

	p.SetDetail("card_last_four", "4242")

	value, ok := p.Detail("card_last_four")
	require.True(t, ok)
	assert.Equal(t, "4242", value)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "Credit Card", payment.CreditCard.String())
	assert.Equal(t, "Mobile Wallet", payment.MobileWallet.String())
	assert.Equal(t, "Bank Transfer", payment.BankTransfer.String())
}
