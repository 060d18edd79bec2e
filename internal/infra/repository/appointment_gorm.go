package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// notFound turns gorm's missing-row error into the business code handlers
// already know how to render.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

// ListProfessionalsForService keeps the order in which links were created.
// Duplicate link rows collapse onto the first one.
func (r *AppointmentGormRepository) ListProfessionalsForService(
	ctx context.Context,
	serviceID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Joins("JOIN professional_services ps ON ps.professional_id = professionals.id").
		Where("ps.service_id = ?", serviceID).
		Order("ps.id ASC").
		Find(&pros).Error; err != nil {
		return nil, err
	}
	return uniqueProfessionals(pros), nil
}

func uniqueProfessionals(pros []models.Professional) []models.Professional {
	seen := make(map[uint]struct{}, len(pros))
	out := pros[:0]
	for _, p := range pros {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func (r *AppointmentGormRepository) HasServiceLink(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProfessionalService{}).
		Where("professional_id = ? AND service_id = ?", professionalID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) ListProfessionalsByName(
	ctx context.Context,
	limit int,
) ([]models.Professional, error) {

	var pros []models.Professional
	q := r.db.WithContext(ctx).Order("name ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// ListAppointmentsForDay returns every appointment of the professional on
// date, whatever its status. Inside a transaction the rows are locked.
func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var apps []models.Appointment
	if err := q.
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindAppointmentAt returns (nil, nil) when the cell is empty.
func (r *AppointmentGormRepository) FindAppointmentAt(
	ctx context.Context,
	professionalID uint,
	date string,
	start string,
) (*models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ? AND start_time = ?", professionalID, date, start).
		Order("id ASC").
		Limit(1).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, nil
	}
	return &apps[0], nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Appointment (listing / status)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.FromDate != "" {
		q = q.Where("date >= ?", filter.FromDate)
	}

	var apps []models.Appointment
	if err := q.
		Order("date ASC, start_time ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

func (r *AppointmentGormRepository) ListPendingReminders(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ? AND reminder_enabled = ? AND reminder_sent_at IS NULL", date, true).
		Order("start_time ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *AppointmentGormRepository) WithinTx(
	ctx context.Context,
	fn func(repo domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
