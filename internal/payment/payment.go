package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"royalstay/internal/booking"
	"royalstay/internal/invoice"
)

var (
	ErrUnknownMethod         = errors.New("unknown payment method")
	ErrNegativeAmount        = errors.New("payment amount cannot be negative")
	ErrNegativeDiscount      = errors.New("discount amount cannot be negative")
	ErrDiscountExceedsAmount = errors.New("discount amount cannot exceed payment amount")
	ErrNotProcessed          = errors.New("payment has not been processed")
	ErrNextID                = errors.New("get next id from generator")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type idGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// DiscountStrategy adjusts a payment before it is processed.
type DiscountStrategy interface {
	Apply(p *Payment) error
}

type Method int

const (
	CreditCard Method = iota
	DebitCard
	Cash
	MobileWallet
	BankTransfer
)

func (m Method) String() string {
	switch m {
	case CreditCard:
		return "Credit Card"
	case DebitCard:
		return "Debit Card"
	case Cash:
		return "Cash"
	case MobileWallet:
		return "Mobile Wallet"
	case BankTransfer:
		return "Bank Transfer"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func (m Method) valid() bool {
	return m >= CreditCard && m <= BankTransfer
}

type input struct {
	Amount float64 `validate:"gte=0"`
}

// Payment settles a booking's cost. Processing is simulated; there is no
// gateway behind it.
type Payment struct {
	id           string
	booking      *booking.Booking
	amount       float64
	method       Method
	transactedAt time.Time
	successful   bool
	details      map[string]string
}

// New builds a payment for the booking and applies any discount strategies
// before it is processed.
func New(
	ctx context.Context,
	idGen idGenerator,
	b *booking.Booking,
	amount float64,
	method Method,
	strategies ...DiscountStrategy,
) (*Payment, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%v: %w", method, ErrUnknownMethod)
	}

	if err := validate.Struct(input{Amount: amount}); err != nil {
		return nil, ErrNegativeAmount
	}

	id, err := idGen.NewID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	//nolint:exhaustruct
	p := &Payment{
		id:      id,
		booking: b,
		amount:  amount,
		method:  method,
		details: make(map[string]string),
	}

	for _, strategy := range strategies {
		if err := strategy.Apply(p); err != nil {
			return nil, fmt.Errorf("apply discount strategy to payment %s: %w", p.id, err)
		}
	}

	return p, nil
}

// Process settles the payment and stamps the transaction time.
func (p *Payment) Process() error {
	p.successful = true
	p.transactedAt = time.Now().UTC()

	return nil
}

// ApplyDiscount reduces the amount due and returns the new amount.
func (p *Payment) ApplyDiscount(discount float64) (float64, error) {
	if discount < 0 {
		return p.amount, ErrNegativeDiscount
	}

	if discount > p.amount {
		return p.amount, ErrDiscountExceedsAmount
	}

	p.amount -= discount

	return p.amount, nil
}

// GenerateInvoice builds the invoice for a settled payment.
func (p *Payment) GenerateInvoice() (*invoice.Invoice, error) {
	if !p.successful {
		return nil, ErrNotProcessed
	}

	return invoice.New(p.id, p.booking, p), nil
}

func (p *Payment) SetDetail(key, value string) {
	p.details[key] = value
}

func (p *Payment) Detail(key string) (string, bool) {
	value, ok := p.details[key]

	return value, ok
}

func (p *Payment) ID() string {
	return p.id
}

func (p *Payment) Booking() *booking.Booking {
	return p.booking
}

func (p *Payment) Amount() float64 {
	return p.amount
}

func (p *Payment) Method() Method {
	return p.method
}

// TransactedAt returns the transaction time; the zero time means the payment
// has not been processed.
func (p *Payment) TransactedAt() time.Time {
	return p.transactedAt
}

func (p *Payment) Successful() bool {
	return p.successful
}

func (p *Payment) String() string {
	status := "Pending"
	transacted := "N/A"

	if p.successful {
		status = "Successful"
		transacted = p.transactedAt.Format(time.DateTime)
	}

	return fmt.Sprintf(
		"Payment ID: %s, Amount: $%.2f, Method: %s, Date: %s, Status: %s",
		p.id,
		p.amount,
		p.method,
		transacted,
		status,
	)
}
