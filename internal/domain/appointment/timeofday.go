package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

const (
	TimeLayout = "15:04"
	DateLayout = "2006-01-02"

	minutesPerDay = 24 * 60
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" value.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, text)
	if err != nil {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidFormat)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustTimeOfDay is ParseTimeOfDay for constants; it panics on bad input.
func MustTimeOfDay(text string) TimeOfDay {
	t, err := ParseTimeOfDay(text)
	if err != nil {
		panic(fmt.Sprintf("invalid time of day %q", text))
	}
	return t
}

// AddMinutes never wraps past midnight: a result beyond 23:59 fails with
// unsupported_range.
func AddMinutes(t TimeOfDay, minutes int) (TimeOfDay, error) {
	out := int(t) + minutes
	if out < 0 || out >= minutesPerDay {
		return 0, httperr.ErrBusiness(httperr.CodeUnsupportedRange)
	}
	return TimeOfDay(out), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ParseDate validates a "YYYY-MM-DD" date and returns it in canonical form.
func ParseDate(text string) (string, error) {
	d, err := time.Parse(DateLayout, text)
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidFormat)
	}
	return d.Format(DateLayout), nil
}
