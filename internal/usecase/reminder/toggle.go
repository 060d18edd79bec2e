package reminder

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ToggleReminder switches an appointment's reminder flag. Both directions
// clear the sent timestamp, so re-enabling schedules a fresh reminder.
type ToggleReminder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleReminder(repo domain.Repository, audit *audit.Dispatcher) *ToggleReminder {
	return &ToggleReminder{repo: repo, audit: audit}
}

func (uc *ToggleReminder) Enable(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	return uc.apply(ctx, appointmentID, "reminder_enabled", domain.EnableReminder)
}

func (uc *ToggleReminder) Disable(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	return uc.apply(ctx, appointmentID, "reminder_disabled", domain.DisableReminder)
}

func (uc *ToggleReminder) apply(
	ctx context.Context,
	appointmentID uint,
	action string,
	change func(ap *models.Appointment),
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	change(ap)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
