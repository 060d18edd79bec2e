package reminder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
)

type ProcessReply struct {
	repo     domain.Repository
	clock    timezone.Clock
	settings Settings
	logger   *zap.Logger
	audit    *audit.Dispatcher
}

func NewProcessReply(
	repo domain.Repository,
	clock timezone.Clock,
	settings Settings,
	logger *zap.Logger,
	audit *audit.Dispatcher,
) *ProcessReply {
	return &ProcessReply{
		repo:     repo,
		clock:    clock,
		settings: settings,
		logger:   logger,
		audit:    audit,
	}
}

// Execute applies a "1" (confirm) or "2" (cancel) reply to the sender's
// earliest appointment from today on. When a client holds several upcoming
// appointments only the first one, by date and start time, is changed.
// It reports whether an appointment was updated.
func (uc *ProcessReply) Execute(ctx context.Context, from, body string) (bool, error) {
	status, ok := domain.ReplyStatus(strings.TrimSpace(body))
	if !ok {
		return false, nil
	}

	phone := notification.NormalizePhone(from, uc.settings.CountryCode)
	if phone == "" {
		return false, nil
	}

	today := timezone.DateOf(uc.clock(), uc.settings.Timezone)
	upcoming, err := uc.repo.ListAppointments(ctx, domain.AppointmentFilter{FromDate: today})
	if err != nil {
		return false, err
	}

	for i := range upcoming {
		ap := &upcoming[i]
		if notification.NormalizePhone(ap.ClientPhone, uc.settings.CountryCode) != phone {
			continue
		}

		previous := ap.Status
		domain.ApplyReply(ap, status)
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return false, err
		}

		uc.logger.Info("appointment updated from whatsapp reply",
			zap.Uint("appointment_id", ap.ID),
			zap.String("from", previous),
			zap.String("to", ap.Status),
		)
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_reply_" + string(status),
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"previous_status": previous},
		})
		return true, nil
	}

	return false, nil
}
