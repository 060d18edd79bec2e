package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var svcs []models.Service
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&svcs).Error; err != nil {
		return nil, err
	}
	return svcs, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *CatalogGormRepository) GetProfessional(ctx context.Context, id uint) (*models.Professional, error) {
	var p models.Professional
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *CatalogGormRepository) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	var pros []models.Professional
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *CatalogGormRepository) ListLinks(ctx context.Context) ([]models.ProfessionalService, error) {
	var links []models.ProfessionalService
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *CatalogGormRepository) ListServiceIDsForProfessional(ctx context.Context, professionalID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.ProfessionalService{}).
		Where("professional_id = ?", professionalID).
		Order("id ASC").
		Pluck("service_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *CatalogGormRepository) SaveProfessional(
	ctx context.Context,
	p *models.Professional,
	serviceIDs []uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.ID == 0 {
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("create professional: %w", err)
			}
		} else {
			if err := tx.Save(p).Error; err != nil {
				return fmt.Errorf("update professional: %w", err)
			}
			if err := tx.
				Where("professional_id = ?", p.ID).
				Delete(&models.ProfessionalService{}).Error; err != nil {
				return fmt.Errorf("clear service links: %w", err)
			}
		}

		if len(serviceIDs) == 0 {
			return nil
		}

		links := make([]models.ProfessionalService, 0, len(serviceIDs))
		for _, sid := range serviceIDs {
			links = append(links, models.ProfessionalService{ProfessionalID: p.ID, ServiceID: sid})
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("create service links: %w", err)
		}
		return nil
	})
}

func (r *CatalogGormRepository) DeleteProfessional(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", id).
			Delete(&models.ProfessionalService{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Professional{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound(gorm.ErrRecordNotFound)
		}
		return nil
	})
}

// Compile-time check
var _ catalog.Repository = (*CatalogGormRepository)(nil)
