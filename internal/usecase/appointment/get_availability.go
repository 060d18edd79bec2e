package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewGetAvailability(repo domain.Repository, logger *zap.Logger) *GetAvailability {
	return &GetAvailability{repo: repo, logger: logger}
}

// Execute lists, per free slot start, the professionals able to take the
// service on date. Missing or malformed input gives an empty result rather
// than an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	serviceID uint,
	date string,
) (*domain.Availability, error) {

	out := domain.NewAvailability()

	if serviceID == 0 || date == "" {
		return out, nil
	}

	day, err := domain.ParseDate(date)
	if err != nil {
		return out, nil
	}

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return out, nil
		}
		return nil, err
	}

	professionals, err := uc.repo.ListProfessionalsForService(ctx, service.ID)
	if err != nil {
		return nil, err
	}

	for _, p := range professionals {
		shift, err := domain.ParseShift(p.ShiftStart, p.ShiftEnd)
		if err != nil {
			uc.logger.Warn("skipping professional with unreadable shift",
				zap.Uint("professional_id", p.ID),
				zap.String("shift_start", p.ShiftStart),
				zap.String("shift_end", p.ShiftEnd),
			)
			continue
		}

		booked, err := uc.repo.ListAppointmentsForDay(ctx, p.ID, day)
		if err != nil {
			return nil, err
		}

		for start := range domain.GenerateSlots(shift.Start, shift.End, service.DurationMin, domain.DefaultStep) {
			end, err := domain.AddMinutes(start, service.DurationMin)
			if err != nil {
				break
			}
			if assertNoOverlap(booked, start, end, 0) != nil {
				continue
			}
			out.Add(start, domain.AvailableProfessional{ID: p.ID, Name: p.Name})
		}
	}

	return out, nil
}
