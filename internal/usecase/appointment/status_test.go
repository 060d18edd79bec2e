package appointment

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

func TestConfirmThenCancel(t *testing.T) {
	f := newFixture()
	ap := f.appointment(t, 1, "2024-06-10", "09:00", "09:30")
	ctx := context.Background()

	confirmed, err := NewConfirmAppointment(f.repo, nil).Execute(ctx, ap.ID)
	if err != nil || confirmed.Status != string(domain.StatusConfirmed) {
		t.Fatalf("confirm: %+v %v", confirmed, err)
	}

	if _, err := NewConfirmAppointment(f.repo, nil).Execute(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state on second confirm, got %v", err)
	}

	cancelled, err := NewCancelAppointment(f.repo, nil).Execute(ctx, ap.ID)
	if err != nil || cancelled.Status != string(domain.StatusCancelled) {
		t.Fatalf("cancel: %+v %v", cancelled, err)
	}

	if _, err := NewCancelAppointment(f.repo, nil).Execute(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state on second cancel, got %v", err)
	}

	if _, err := NewCancelAppointment(f.repo, nil).Execute(ctx, 999); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
