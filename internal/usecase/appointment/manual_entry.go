package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ManualSlotMinutes is the length of every appointment written from the grid.
const ManualSlotMinutes = 30

type ManualAction string

const (
	ManualCreated ManualAction = "created"
	ManualUpdated ManualAction = "updated"
	ManualDeleted ManualAction = "deleted"
	ManualNoop    ManualAction = "noop"
)

type ManualEntryInput struct {
	ProfessionalID uint
	Date           string
	Time           string
	ClientName     string
	ClientPhone    string
}

type ManualEntryResult struct {
	Action      ManualAction        `json:"action"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
}

type ManualEntry struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
}

func NewManualEntry(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *ManualEntry {
	return &ManualEntry{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// Execute writes one grid cell. A non-empty name creates or overwrites the
// cell; an empty name deletes whatever is there.
func (uc *ManualEntry) Execute(
	ctx context.Context,
	in ManualEntryInput,
) (ManualEntryResult, error) {

	if in.ProfessionalID == 0 {
		return ManualEntryResult{Action: ManualNoop}, nil
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return ManualEntryResult{}, err
	}
	start, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return ManualEntryResult{}, err
	}
	end, err := domain.AddMinutes(start, ManualSlotMinutes)
	if err != nil {
		return ManualEntryResult{}, err
	}

	name := strings.TrimSpace(in.ClientName)
	phone := strings.TrimSpace(in.ClientPhone)
	professionalID := in.ProfessionalID

	result := ManualEntryResult{Action: ManualNoop}

	err = withAgendaLock(ctx, uc.locker, uc.repo, professionalID, date, func(ctx context.Context, tx domain.Repository) error {
		existing, err := tx.FindAppointmentAt(ctx, professionalID, date, start.String())
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// Nome vazio → remove a célula
		// --------------------------------------------------
		if name == "" {
			if existing == nil {
				return nil
			}
			if err := tx.DeleteAppointment(ctx, existing.ID); err != nil {
				return err
			}
			result = ManualEntryResult{Action: ManualDeleted, Appointment: existing}
			return nil
		}

		day, err := tx.ListAppointmentsForDay(ctx, professionalID, date)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// Edição no lugar
		// --------------------------------------------------
		if existing != nil {
			if err := assertNoOverlap(day, start, end, existing.ID); err != nil {
				return err
			}
			existing.ClientName = name
			existing.ClientPhone = phone
			existing.EndTime = end.String()
			existing.Status = string(domain.StatusScheduled)
			if err := tx.UpdateAppointment(ctx, existing); err != nil {
				return err
			}
			result = ManualEntryResult{Action: ManualUpdated, Appointment: existing}
			return nil
		}

		// --------------------------------------------------
		// Nova célula
		// --------------------------------------------------
		if err := assertNoOverlap(day, start, end, 0); err != nil {
			return err
		}
		ap := &models.Appointment{
			ClientName:     name,
			ClientPhone:    phone,
			ProfessionalID: &professionalID,
			Date:           date,
			StartTime:      start.String(),
			EndTime:        end.String(),
			Status:         string(domain.InitialStatus()),
		}
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}
		result = ManualEntryResult{Action: ManualCreated, Appointment: ap}
		return nil
	})
	if err != nil {
		return ManualEntryResult{}, err
	}

	if result.Action != ManualNoop {
		uc.audit.Dispatch(audit.Event{
			Action:   "agenda_cell_" + string(result.Action),
			Entity:   "appointment",
			EntityID: &result.Appointment.ID,
			Metadata: map[string]any{
				"professional_id": professionalID,
				"date":            date,
				"start_time":      start.String(),
			},
		})
	}

	return result, nil
}
