package appointment

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/agenda-scheduler/internal/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type fixture struct {
	repo   *memory.Repository
	locker lock.Locker
	log    *zap.Logger
}

func newFixture() *fixture {
	return &fixture{
		repo:   memory.New(),
		locker: lock.NewLocalLocker(),
		log:    zap.NewNop(),
	}
}

func (f *fixture) service(t *testing.T, name string, duration int) *models.Service {
	t.Helper()
	s := &models.Service{Name: name, DurationMin: duration}
	if err := f.repo.CreateService(context.Background(), s); err != nil {
		t.Fatalf("create service: %v", err)
	}
	return s
}

func (f *fixture) professional(t *testing.T, name, start, end string, services ...uint) *models.Professional {
	t.Helper()
	p := &models.Professional{Name: name, ShiftStart: start, ShiftEnd: end}
	if err := f.repo.SaveProfessional(context.Background(), p, services); err != nil {
		t.Fatalf("save professional: %v", err)
	}
	return p
}

func (f *fixture) appointment(t *testing.T, professionalID uint, date, start, end string) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		ClientName:     "Existing",
		ProfessionalID: &professionalID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
	}
	if err := f.repo.CreateAppointment(context.Background(), ap); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return ap
}
