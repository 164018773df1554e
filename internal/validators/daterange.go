package validators

import (
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-budget-stats/internal/models"
)

// ErrInvalidDateRange is returned for a missing, unparseable, inverted or
// too wide date range. Callers never learn which check failed.
var ErrInvalidDateRange = errors.New("invalid date range")

// dateLayouts lists the accepted calendar date/time formats, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const day = 24 * time.Hour

// DateRangeValidator validates "from"/"to" query values against a maximum window.
type DateRangeValidator struct {
	maxDays int
}

// NewDateRangeValidator creates a validator accepting ranges up to maxDays wide.
// A non-positive maxDays falls back to models.DefaultMaxDateRangeDays.
func NewDateRangeValidator(maxDays int) *DateRangeValidator {
	if maxDays <= 0 {
		maxDays = models.DefaultMaxDateRangeDays
	}
	return &DateRangeValidator{maxDays: maxDays}
}

// MaxDays returns the widest accepted range in days.
func (v *DateRangeValidator) MaxDays() int {
	return v.maxDays
}

// Validate parses both bounds and applies the range policy.
func (v *DateRangeValidator) Validate(from, to string) (models.DateRange, error) {
	fromDate, err := ParseDate(from)
	if err != nil {
		return models.DateRange{}, ErrInvalidDateRange
	}
	toDate, err := ParseDate(to)
	if err != nil {
		return models.DateRange{}, ErrInvalidDateRange
	}
	if err := v.CheckRange(fromDate, toDate); err != nil {
		return models.DateRange{}, err
	}
	return models.DateRange{From: fromDate, To: toDate}, nil
}

// CheckRange rejects ranges where to precedes from or that span more than
// maxDays whole days.
func (v *DateRangeValidator) CheckRange(from, to time.Time) error {
	span := to.Sub(from)
	if span < 0 {
		return ErrInvalidDateRange
	}
	if int(span/day) > v.maxDays {
		return ErrInvalidDateRange
	}
	return nil
}

// ParseDate interprets s as a calendar date or date/time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDateRange
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateRange
}
