package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(repo domain.Repository, audit *audit.Dispatcher) *CreateService {
	return &CreateService{repo: repo, audit: audit}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	name string,
	durationMin int,
) (*models.Service, error) {

	if err := domain.ValidateService(name, durationMin); err != nil {
		return nil, err
	}

	svc := &models.Service{
		Name:        strings.TrimSpace(name),
		DurationMin: durationMin,
	}
	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{"duration_min": durationMin},
	})

	return svc, nil
}

// ======================================================
// READ
// ======================================================

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.GetService(ctx, id)
}
