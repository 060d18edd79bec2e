package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	list         *ucAppointment.ListAppointments
	confirm      *ucAppointment.ConfirmAppointment
	cancel       *ucAppointment.CancelAppointment
	logger       *zap.Logger
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListAppointments,
	confirm *ucAppointment.ConfirmAppointment,
	cancel *ucAppointment.CancelAppointment,
	logger *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		list:         list,
		confirm:      confirm,
		cancel:       cancel,
		logger:       logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName      string `json:"client_name" binding:"required"`
	ClientPhone     string `json:"client_phone"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	ProfessionalID  uint   `json:"professional_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	ReminderEnabled bool   `json:"reminder_enabled"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability never fails on bad query input: an unreadable service id or
// date yields an empty slot list.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	var serviceID uint
	var q struct {
		ServiceID uint `form:"service_id"`
	}
	if err := c.ShouldBindQuery(&q); err == nil {
		serviceID = q.ServiceID
	}

	avail, err := h.availability.Execute(c.Request.Context(), serviceID, c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err, "failed_to_get_availability", "Erro ao calcular disponibilidade.")
		return
	}
	httpresp.List(c, avail.Slots())
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ServiceID:       req.ServiceID,
		ProfessionalID:  req.ProfessionalID,
		Date:            req.Date,
		Time:            req.Time,
		ReminderEnabled: req.ReminderEnabled,
	})
	if err != nil {
		writeError(c, h.logger, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, "failed_to_confirm_appointment", "Erro ao confirmar agendamento.")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}
	httpresp.OK(c, ap)
}
