package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	ServiceID      uint
	ProfessionalID uint

	Date string
	Time string

	ReminderEnabled bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora
	// --------------------------------------------------
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidFormat)
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end, err := domain.AddMinutes(start, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Profissional vinculado ao serviço
	// --------------------------------------------------
	linked, err := uc.repo.HasServiceLink(ctx, in.ProfessionalID, service.ID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, httperr.ErrBusiness(httperr.CodeIneligibleProfessional)
	}

	// --------------------------------------------------
	// 4️⃣ Conflito + criação (lock + transação)
	// --------------------------------------------------
	professionalID := in.ProfessionalID
	serviceID := service.ID

	ap := &models.Appointment{
		ClientName:      strings.TrimSpace(in.ClientName),
		ClientPhone:     strings.TrimSpace(in.ClientPhone),
		ProfessionalID:  &professionalID,
		ServiceID:       &serviceID,
		Date:            date,
		StartTime:       start.String(),
		EndTime:         end.String(),
		Status:          string(domain.InitialStatus()),
		ReminderEnabled: in.ReminderEnabled,
	}

	err = withAgendaLock(ctx, uc.locker, uc.repo, professionalID, date, func(ctx context.Context, tx domain.Repository) error {
		existing, err := tx.ListAppointmentsForDay(ctx, professionalID, date)
		if err != nil {
			return err
		}
		if err := assertNoOverlap(existing, start, end, 0); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"professional_id": professionalID,
			"service_id":      serviceID,
			"date":            date,
			"start_time":      ap.StartTime,
		},
	})

	return ap, nil
}
