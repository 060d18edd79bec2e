package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// CatalogReader resolves the names shown next to each appointment.
type CatalogReader interface {
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	ListServices(ctx context.Context) ([]models.Service, error)
}

type ListAppointments struct {
	repo    appointment.Repository
	catalog CatalogReader
}

func NewListAppointments(
	repo appointment.Repository,
	catalog CatalogReader,
) *ListAppointments {
	return &ListAppointments{
		repo:    repo,
		catalog: catalog,
	}
}

// Execute lists appointments ordered by date and start time. An empty date
// lists everything; a malformed one is rejected.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	var filter appointment.AppointmentFilter
	if date != "" {
		day, err := appointment.ParseDate(date)
		if err != nil {
			return nil, err
		}
		filter.Date = day
	}

	apps, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	pros, err := uc.catalog.ListProfessionals(ctx)
	if err != nil {
		return nil, err
	}
	svcs, err := uc.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	proNames := make(map[uint]string, len(pros))
	for _, p := range pros {
		proNames[p.ID] = p.Name
	}
	svcNames := make(map[uint]string, len(svcs))
	for _, s := range svcs {
		svcNames[s.ID] = s.Name
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		item := dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			StartTime:       ap.StartTime,
			EndTime:         ap.EndTime,
			Status:          ap.Status,
			ClientName:      ap.ClientName,
			ClientPhone:     ap.ClientPhone,
			ProfessionalID:  ap.ProfessionalID,
			ServiceID:       ap.ServiceID,
			ReminderEnabled: ap.ReminderEnabled,
			ReminderSentAt:  ap.ReminderSentAt,
		}
		if ap.ProfessionalID != nil {
			item.ProfessionalName = proNames[*ap.ProfessionalID]
		}
		if ap.ServiceID != nil {
			item.ServiceName = svcNames[*ap.ServiceID]
		}
		out = append(out, item)
	}

	return out, nil
}
