package appointment

import (
	"slices"
	"testing"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

func collect(start, end string, duration int) []string {
	var out []string
	for s := range GenerateSlots(MustTimeOfDay(start), MustTimeOfDay(end), duration, DefaultStep) {
		out = append(out, s.String())
	}
	return out
}

func TestGenerateSlots_ShiftBoundaryIsInclusive(t *testing.T) {
	got := collect("08:00", "10:00", 30)
	want := []string{"08:00", "08:30", "09:00", "09:30"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_StepIndependentOfDuration(t *testing.T) {
	got := collect("08:00", "10:00", 45)
	want := []string{"08:00", "08:30", "09:00"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_DurationLongerThanShift(t *testing.T) {
	if got := collect("08:00", "08:30", 60); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestGenerateSlots_StopsBeforeMidnight(t *testing.T) {
	got := collect("22:30", "23:59", 30)
	want := []string{"22:30", "23:00"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_NonPositiveInputs(t *testing.T) {
	for range GenerateSlots(0, 600, 0, 30) {
		t.Fatal("zero duration must yield nothing")
	}
	for range GenerateSlots(0, 600, 30, 0) {
		t.Fatal("zero step must yield nothing")
	}
}

func TestGenerateSlots_Properties(t *testing.T) {
	shifts := [][2]string{{"08:00", "18:00"}, {"07:15", "12:40"}, {"13:00", "13:45"}}
	durations := []int{15, 30, 45, 60, 90}

	for _, sh := range shifts {
		start, end := MustTimeOfDay(sh[0]), MustTimeOfDay(sh[1])
		for _, d := range durations {
			var prev TimeOfDay = -1
			for s := range GenerateSlots(start, end, d, DefaultStep) {
				if s+TimeOfDay(d) > end {
					t.Fatalf("slot %s+%d exceeds shift end %s", s, d, end)
				}
				if prev >= 0 && s-prev != DefaultStep {
					t.Fatalf("slots %s and %s not spaced by step", prev, s)
				}
				prev = s
			}
		}
	}
}

func TestGenerateSlots_Restartable(t *testing.T) {
	seq := GenerateSlots(MustTimeOfDay("08:00"), MustTimeOfDay("09:00"), 30, 30)

	var first, second []TimeOfDay
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}
	if !slices.Equal(first, second) || len(first) != 2 {
		t.Fatalf("expected identical runs of 2 slots, got %v and %v", first, second)
	}
}

func TestParseShift(t *testing.T) {
	sh, err := ParseShift("08:00", "17:00")
	if err != nil {
		t.Fatalf("ParseShift error: %v", err)
	}
	if sh.Start.String() != "08:00" || sh.End.String() != "17:00" {
		t.Fatalf("unexpected shift %+v", sh)
	}

	if _, err := ParseShift("17:00", "08:00"); !httperr.IsBusiness(err, httperr.CodeUnsupportedRange) {
		t.Fatalf("expected unsupported_range for inverted shift, got %v", err)
	}
	if _, err := ParseShift("8h", "17:00"); !httperr.IsBusiness(err, httperr.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}
