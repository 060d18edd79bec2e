package catalog

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type Repository interface {
	// -------- Service --------
	CreateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, id uint) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)

	// -------- Professional --------
	GetProfessional(ctx context.Context, id uint) (*models.Professional, error)
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	ListLinks(ctx context.Context) ([]models.ProfessionalService, error)
	ListServiceIDsForProfessional(ctx context.Context, professionalID uint) ([]uint, error)

	// SaveProfessional creates or updates p and replaces its service links,
	// all in one transaction.
	SaveProfessional(ctx context.Context, p *models.Professional, serviceIDs []uint) error

	// DeleteProfessional removes the professional and its links together.
	DeleteProfessional(ctx context.Context, id uint) error
}
