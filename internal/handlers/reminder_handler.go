package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	ucReminder "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/reminder"
)

type ReminderHandler struct {
	run    *ucReminder.ProcessPending
	send   *ucReminder.SendReminder
	toggle *ucReminder.ToggleReminder
	logger *zap.Logger
}

func NewReminderHandler(
	run *ucReminder.ProcessPending,
	send *ucReminder.SendReminder,
	toggle *ucReminder.ToggleReminder,
	logger *zap.Logger,
) *ReminderHandler {
	return &ReminderHandler{run: run, send: send, toggle: toggle, logger: logger}
}

// Run processes tomorrow's pending reminders and reports the counts.
func (h *ReminderHandler) Run(c *gin.Context) {
	res, err := h.run.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "failed_to_process_reminders", "Erro ao processar lembretes.")
		return
	}
	httpresp.OK(c, res)
}

func (h *ReminderHandler) Send(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.send.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, "failed_to_send_reminder", "Erro ao enviar lembrete.")
		return
	}
	httpresp.OK(c, res)
}

func (h *ReminderHandler) Enable(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.toggle.Enable(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, "failed_to_enable_reminder", "Erro ao ativar lembrete.")
		return
	}
	httpresp.OK(c, ap)
}

func (h *ReminderHandler) Disable(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.toggle.Disable(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, "failed_to_disable_reminder", "Erro ao desativar lembrete.")
		return
	}
	httpresp.OK(c, ap)
}
