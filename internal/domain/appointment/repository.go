package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type AppointmentFilter struct {
	Date     string
	FromDate string
}

type Repository interface {
	// -------- Catalog lookups --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListProfessionalsForService(
		ctx context.Context,
		serviceID uint,
	) ([]models.Professional, error)

	HasServiceLink(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (bool, error)

	ListProfessionalsByName(
		ctx context.Context,
		limit int,
	) ([]models.Professional, error)

	// -------- Appointment (create / conflict) --------
	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	FindAppointmentAt(
		ctx context.Context,
		professionalID uint,
		date string,
		start string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ListAppointments orders by (date, start_time).
	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, error)

	// -------- Reminders --------
	ListPendingReminders(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// WithinTx runs fn against a repository bound to a single transaction.
	WithinTx(
		ctx context.Context,
		fn func(repo Repository) error,
	) error
}
