package reminder

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
)

// SendReminder sends one appointment's reminder right away, whatever its
// date or flag.
type SendReminder struct {
	repo     domain.Repository
	sender   notification.Sender
	clock    timezone.Clock
	settings Settings
	logger   *zap.Logger
	audit    *audit.Dispatcher
}

func NewSendReminder(
	repo domain.Repository,
	sender notification.Sender,
	clock timezone.Clock,
	settings Settings,
	logger *zap.Logger,
	audit *audit.Dispatcher,
) *SendReminder {
	return &SendReminder{
		repo:     repo,
		sender:   sender,
		clock:    clock,
		settings: settings,
		logger:   logger,
		audit:    audit,
	}
}

func (uc *SendReminder) Execute(ctx context.Context, appointmentID uint) (RunResult, error) {
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return RunResult{}, err
	}

	if err := deliver(ctx, uc.repo, uc.sender, uc.clock, uc.settings.CountryCode, ap); err != nil {
		uc.logger.Warn("reminder not sent",
			zap.Uint("appointment_id", ap.ID),
			zap.Error(err),
		)
		return RunResult{Failed: 1}, nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reminder_sent",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return RunResult{Sent: 1}, nil
}
