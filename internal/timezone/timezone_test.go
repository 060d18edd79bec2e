package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/A_Zone")
	if loc.String() != DefaultTimezone && loc != time.UTC {
		t.Fatalf("unexpected fallback location %s", loc)
	}
}

func TestDateOf_UsesBusinessTimezone(t *testing.T) {
	// 01:30 UTC is still the previous evening in UTC-3.
	instant := time.Date(2026, 10, 20, 1, 30, 0, 0, time.UTC)
	if got := DateOf(instant, "America/Sao_Paulo"); got != "2026-10-19" {
		t.Fatalf("expected 2026-10-19, got %s", got)
	}
	if got := DateOf(instant, "UTC"); got != "2026-10-20" {
		t.Fatalf("expected 2026-10-20, got %s", got)
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-12-31", 1)
	if err != nil || got != "2027-01-01" {
		t.Fatalf("AddDays = %q, %v", got, err)
	}
	if _, err := AddDays("31/12/2026", 1); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
