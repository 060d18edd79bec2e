package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/dto"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// SaveProfessionalInput creates a professional when ID is zero and replaces
// an existing one otherwise. ServiceIDs is the complete new link set.
type SaveProfessionalInput struct {
	ID         uint
	Name       string
	ShiftStart string
	ShiftEnd   string
	ServiceIDs []uint
}

// ======================================================
// SAVE
// ======================================================

type SaveProfessional struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveProfessional(repo domain.Repository, audit *audit.Dispatcher) *SaveProfessional {
	return &SaveProfessional{repo: repo, audit: audit}
}

func (uc *SaveProfessional) Execute(
	ctx context.Context,
	in SaveProfessionalInput,
) (*dto.ProfessionalDTO, error) {

	if err := domain.ValidateProfessional(in.Name, in.ShiftStart, in.ShiftEnd); err != nil {
		return nil, err
	}

	serviceIDs := domain.DedupIDs(in.ServiceIDs)
	services := make([]dto.ServiceRefDTO, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, err := uc.repo.GetService(ctx, id)
		if err != nil {
			return nil, err
		}
		services = append(services, dto.ServiceRefDTO{ID: svc.ID, Name: svc.Name})
	}

	p := &models.Professional{}
	action := "professional_created"
	if in.ID != 0 {
		existing, err := uc.repo.GetProfessional(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		p = existing
		action = "professional_updated"
	}

	p.Name = strings.TrimSpace(in.Name)
	p.ShiftStart = in.ShiftStart
	p.ShiftEnd = in.ShiftEnd

	if err := uc.repo.SaveProfessional(ctx, p, serviceIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "professional",
		EntityID: &p.ID,
		Metadata: map[string]any{"service_ids": serviceIDs},
	})

	return &dto.ProfessionalDTO{
		ID:         p.ID,
		Name:       p.Name,
		ShiftStart: p.ShiftStart,
		ShiftEnd:   p.ShiftEnd,
		Services:   services,
	}, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteProfessional struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteProfessional(repo domain.Repository, audit *audit.Dispatcher) *DeleteProfessional {
	return &DeleteProfessional{repo: repo, audit: audit}
}

func (uc *DeleteProfessional) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteProfessional(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "professional_deleted",
		Entity:   "professional",
		EntityID: &id,
	})
	return nil
}

// ======================================================
// LIST
// ======================================================

type ListProfessionals struct {
	repo domain.Repository
}

func NewListProfessionals(repo domain.Repository) *ListProfessionals {
	return &ListProfessionals{repo: repo}
}

// Execute lists professionals by name, each with its linked services in link
// order.
func (uc *ListProfessionals) Execute(ctx context.Context) ([]dto.ProfessionalDTO, error) {
	pros, err := uc.repo.ListProfessionals(ctx)
	if err != nil {
		return nil, err
	}
	links, err := uc.repo.ListLinks(ctx)
	if err != nil {
		return nil, err
	}
	svcs, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(svcs))
	for _, s := range svcs {
		names[s.ID] = s.Name
	}

	byProfessional := map[uint][]dto.ServiceRefDTO{}
	for _, l := range links {
		name, ok := names[l.ServiceID]
		if !ok {
			continue
		}
		byProfessional[l.ProfessionalID] = append(byProfessional[l.ProfessionalID], dto.ServiceRefDTO{ID: l.ServiceID, Name: name})
	}

	out := make([]dto.ProfessionalDTO, 0, len(pros))
	for _, p := range pros {
		services := byProfessional[p.ID]
		if services == nil {
			services = []dto.ServiceRefDTO{}
		}
		out = append(out, dto.ProfessionalDTO{
			ID:         p.ID,
			Name:       p.Name,
			ShiftStart: p.ShiftStart,
			ShiftEnd:   p.ShiftEnd,
			Services:   services,
		})
	}
	return out, nil
}
