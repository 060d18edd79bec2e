package appointment

import (
	"iter"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

// DefaultStep is the spacing between candidate slot starts, independent of
// the service duration.
const DefaultStep = 30

// GenerateSlots yields candidate start times from shiftStart every step
// minutes, stopping at the first start whose slot would end after shiftEnd.
// The sequence can be ranged over any number of times.
func GenerateSlots(shiftStart, shiftEnd TimeOfDay, slotDuration, step int) iter.Seq[TimeOfDay] {
	return func(yield func(TimeOfDay) bool) {
		if slotDuration <= 0 || step <= 0 {
			return
		}

		for cur := shiftStart; ; {
			end, err := AddMinutes(cur, slotDuration)
			if err != nil || end > shiftEnd {
				return
			}
			if !yield(cur) {
				return
			}

			next, err := AddMinutes(cur, step)
			if err != nil {
				return
			}
			cur = next
		}
	}
}

// Shift is a professional's parsed working interval.
type Shift struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseShift parses a shift and requires start to precede end.
func ParseShift(start, end string) (Shift, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Shift{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Shift{}, err
	}
	if s >= e {
		return Shift{}, httperr.ErrBusiness(httperr.CodeUnsupportedRange)
	}
	return Shift{Start: s, End: e}, nil
}
