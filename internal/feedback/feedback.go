package feedback

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"royalstay/internal/booking"
	"royalstay/internal/guest"
)

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrUnknownCategory  = errors.New("unknown feedback category")
	ErrNextID           = errors.New("get next id from generator")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type idGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Category int

const (
	Cleanliness Category = iota
	Comfort
	Staff
	Value
	Location
)

func (c Category) String() string {
	switch c {
	case Cleanliness:
		return "cleanliness"
	case Comfort:
		return "comfort"
	case Staff:
		return "staff"
	case Value:
		return "value"
	case Location:
		return "location"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

var categories = []Category{Cleanliness, Comfort, Staff, Value, Location}

// Feedback is a guest's review of a stay: an overall 1-5 rating, an optional
// comment, and per-category scores.
type Feedback struct {
	id          string
	guest       *guest.Guest
	booking     *booking.Booking
	rating      int
	comment     string
	submittedAt time.Time
	ratings     map[Category]int
}

func New(
	ctx context.Context,
	idGen idGenerator,
	g *guest.Guest,
	b *booking.Booking,
	rating int,
	comment string,
) (*Feedback, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	id, err := idGen.NewID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	return &Feedback{
		id:          id,
		guest:       g,
		booking:     b,
		rating:      rating,
		comment:     comment,
		submittedAt: time.Now().UTC(),
		ratings:     make(map[Category]int, len(categories)),
	}, nil
}

func validateRating(rating int) error {
	if err := validate.Var(rating, "gte=1,lte=5"); err != nil {
		return ErrRatingOutOfRange
	}

	return nil
}

// RateCategory scores one category.
func (f *Feedback) RateCategory(category Category, rating int) error {
	if category < Cleanliness || category > Location {
		return fmt.Errorf("%v: %w", category, ErrUnknownCategory)
	}

	if err := validateRating(rating); err != nil {
		return err
	}

	f.ratings[category] = rating

	return nil
}

// RateExperience scores every category at once and replaces the overall
// rating with the rounded category average.
func (f *Feedback) RateExperience(cleanliness, comfort, staff, value, location int) error {
	scores := map[Category]int{
		Cleanliness: cleanliness,
		Comfort:     comfort,
		Staff:       staff,
		Value:       value,
		Location:    location,
	}

	for _, category := range categories {
		if err := f.RateCategory(category, scores[category]); err != nil {
			return err
		}
	}

	var total int
	for _, rating := range f.ratings {
		total += rating
	}

	f.rating = int(math.Round(float64(total) / float64(len(categories))))

	return nil
}

func (f *Feedback) SetComment(comment string) {
	f.comment = comment
}

func (f *Feedback) ID() string {
	return f.id
}

func (f *Feedback) Guest() *guest.Guest {
	return f.guest
}

func (f *Feedback) Booking() *booking.Booking {
	return f.booking
}

func (f *Feedback) Rating() int {
	return f.rating
}

func (f *Feedback) Comment() string {
	return f.comment
}

func (f *Feedback) SubmittedAt() time.Time {
	return f.submittedAt
}

// CategoryRatings returns the rated categories and their scores.
func (f *Feedback) CategoryRatings() map[Category]int {
	ratings := make(map[Category]int, len(f.ratings))

	for category, rating := range f.ratings {
		ratings[category] = rating
	}

	return ratings
}

func (f *Feedback) String() string {
	var rated []string

	for _, category := range categories {
		if rating, ok := f.ratings[category]; ok {
			rated = append(rated, fmt.Sprintf("%s: %d/5", category, rating))
		}
	}

	categoriesInfo := ""
	if len(rated) > 0 {
		categoriesInfo = fmt.Sprintf(", Categories: %s", strings.Join(rated, ", "))
	}

	return fmt.Sprintf(
		"Feedback ID: %s, Guest: %s, Booking: %s, Rating: %d/5%s, Date: %s",
		f.id,
		f.guest.Name(),
		f.booking.ID(),
		f.rating,
		categoriesInfo,
		f.submittedAt.Format(time.DateOnly),
	)
}
