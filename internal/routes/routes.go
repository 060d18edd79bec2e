package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/handlers"
	"github.com/BruksfildServices01/agenda-scheduler/internal/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/middleware"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/catalog"
	ucReminder "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/reminder"
)

// Deps are the long-lived collaborators built once in main.
type Deps struct {
	Config *config.Config
	Logger *zap.Logger

	Appointments domain.Repository
	Catalog      catalog.Repository
	AuditStore   audit.Store
	Audit        *audit.Dispatcher

	Locker lock.Locker
	Sender notification.Sender
	Clock  timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware())

	reminderSettings := ucReminder.Settings{
		Timezone:    d.Config.Timezone,
		CountryCode: d.Config.WhatsApp.CountryCode,
	}

	// ======================================================
	// 🧠 USE CASES — CATALOG
	// ======================================================
	createServiceUC := ucCatalog.NewCreateService(d.Catalog, d.Audit)
	listServicesUC := ucCatalog.NewListServices(d.Catalog)
	getServiceUC := ucCatalog.NewGetService(d.Catalog)

	saveProfessionalUC := ucCatalog.NewSaveProfessional(d.Catalog, d.Audit)
	deleteProfessionalUC := ucCatalog.NewDeleteProfessional(d.Catalog, d.Audit)
	listProfessionalsUC := ucCatalog.NewListProfessionals(d.Catalog)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(d.Appointments, d.Logger)
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Appointments, d.Locker, d.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(d.Appointments, d.Catalog)
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(d.Appointments, d.Audit)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(d.Appointments, d.Audit)

	getAgendaUC := ucAppointment.NewGetAgenda(d.Appointments, d.Clock, d.Config.Timezone)
	manualEntryUC := ucAppointment.NewManualEntry(d.Appointments, d.Locker, d.Audit)

	// ======================================================
	// 🧠 USE CASES — REMINDERS
	// ======================================================
	processPendingUC := ucReminder.NewProcessPending(d.Appointments, d.Sender, d.Clock, reminderSettings, d.Logger, d.Audit)
	sendReminderUC := ucReminder.NewSendReminder(d.Appointments, d.Sender, d.Clock, reminderSettings, d.Logger, d.Audit)
	toggleReminderUC := ucReminder.NewToggleReminder(d.Appointments, d.Audit)
	processReplyUC := ucReminder.NewProcessReply(d.Appointments, d.Clock, reminderSettings, d.Logger, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(createServiceUC, listServicesUC, getServiceUC, d.Logger)
	professionalHandler := handlers.NewProfessionalHandler(saveProfessionalUC, deleteProfessionalUC, listProfessionalsUC, d.Logger)

	appointmentHandler := handlers.NewAppointmentHandler(
		getAvailabilityUC,
		createAppointmentUC,
		listAppointmentsUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		d.Logger,
	)
	agendaHandler := handlers.NewAgendaHandler(getAgendaUC, manualEntryUC, d.Logger)
	reminderHandler := handlers.NewReminderHandler(processPendingUC, sendReminderUC, toggleReminderUC, d.Logger)
	webhookHandler := handlers.NewWebhookHandler(processReplyUC, d.Config.WhatsApp, d.Logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore, d.Logger)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 📩 WEBHOOK (provedor WhatsApp)
	// ======================================================
	webhook := r.Group("/webhooks")
	webhook.Use(middleware.RateLimitMiddleware(rate.Limit(20), 40, d.Logger))
	{
		webhook.GET("/whatsapp", webhookHandler.Verify)
		webhook.POST("/whatsapp", webhookHandler.Receive)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/professionals", professionalHandler.List)
		api.POST("/professionals", professionalHandler.Create)
		api.PUT("/professionals/:id", professionalHandler.Update)
		api.DELETE("/professionals/:id", professionalHandler.Delete)

		api.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		booking := api.Group("/")
		booking.Use(middleware.RateLimitMiddleware(rate.Limit(5), 20, d.Logger))
		{
			booking.POST("/appointments", appointmentHandler.Create)
			booking.POST("/agenda", agendaHandler.Save)
		}

		api.GET("/appointments", appointmentHandler.List)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		api.POST("/appointments/:id/reminder/enable", reminderHandler.Enable)
		api.POST("/appointments/:id/reminder/disable", reminderHandler.Disable)
		api.POST("/appointments/:id/reminder/send", reminderHandler.Send)
		api.POST("/reminders/run", reminderHandler.Run)

		api.GET("/agenda", agendaHandler.Get)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
