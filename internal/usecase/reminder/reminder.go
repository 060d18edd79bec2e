// Package reminder sends next-day WhatsApp reminders and applies the
// clients' "1"/"2" replies back to their appointments.
package reminder

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
)

var errNoPhone = errors.New("appointment has no usable phone number")

// RunResult counts the outcome of a reminder run.
type RunResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Settings carries the configuration shared by the reminder use cases.
type Settings struct {
	Timezone    string
	CountryCode string
}

// deliver sends the reminder for ap and, on success, stamps it. Any error
// leaves the appointment untouched so a later run retries it.
func deliver(
	ctx context.Context,
	repo domain.Repository,
	sender notification.Sender,
	clock timezone.Clock,
	countryCode string,
	ap *models.Appointment,
) error {

	phone := notification.NormalizePhone(ap.ClientPhone, countryCode)
	if phone == "" {
		return errNoPhone
	}

	msg := notification.ReminderMessage(ap.ClientName, ap.Date, ap.StartTime)
	if err := sender.Send(ctx, phone, msg); err != nil {
		return err
	}

	domain.MarkReminderSent(ap, clock().UTC())
	return repo.UpdateAppointment(ctx, ap)
}

// ======================================================
// BATCH
// ======================================================

type ProcessPending struct {
	repo     domain.Repository
	sender   notification.Sender
	clock    timezone.Clock
	settings Settings
	logger   *zap.Logger
	audit    *audit.Dispatcher
}

func NewProcessPending(
	repo domain.Repository,
	sender notification.Sender,
	clock timezone.Clock,
	settings Settings,
	logger *zap.Logger,
	audit *audit.Dispatcher,
) *ProcessPending {
	return &ProcessPending{
		repo:     repo,
		sender:   sender,
		clock:    clock,
		settings: settings,
		logger:   logger,
		audit:    audit,
	}
}

// Execute reminds every appointment dated tomorrow (shop timezone) whose
// reminder is enabled and not yet sent. Send failures are counted, never
// returned.
func (uc *ProcessPending) Execute(ctx context.Context) (RunResult, error) {
	today := timezone.DateOf(uc.clock(), uc.settings.Timezone)
	tomorrow, err := timezone.AddDays(today, 1)
	if err != nil {
		return RunResult{}, err
	}

	pending, err := uc.repo.ListPendingReminders(ctx, tomorrow)
	if err != nil {
		return RunResult{}, err
	}

	var res RunResult
	for i := range pending {
		ap := &pending[i]
		if err := deliver(ctx, uc.repo, uc.sender, uc.clock, uc.settings.CountryCode, ap); err != nil {
			res.Failed++
			uc.logger.Warn("reminder not sent",
				zap.Uint("appointment_id", ap.ID),
				zap.Error(err),
			)
			continue
		}
		res.Sent++
	}

	uc.logger.Info("reminder run finished",
		zap.String("date", tomorrow),
		zap.Int("sent", res.Sent),
		zap.Int("failed", res.Failed),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "reminders_processed",
		Entity:   "appointment",
		Metadata: map[string]any{"date": tomorrow, "sent": res.Sent, "failed": res.Failed},
	})

	return res, nil
}
