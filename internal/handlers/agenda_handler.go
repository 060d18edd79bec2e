package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/appointment"
)

type AgendaHandler struct {
	grid   *ucAppointment.GetAgenda
	entry  *ucAppointment.ManualEntry
	logger *zap.Logger
}

func NewAgendaHandler(
	grid *ucAppointment.GetAgenda,
	entry *ucAppointment.ManualEntry,
	logger *zap.Logger,
) *AgendaHandler {
	return &AgendaHandler{grid: grid, entry: entry, logger: logger}
}

type ManualEntryRequest struct {
	ProfessionalID uint   `json:"professional_id"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
}

func (h *AgendaHandler) Get(c *gin.Context) {
	grid, err := h.grid.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, h.logger, err, "failed_to_load_agenda", "Erro ao carregar agenda.")
		return
	}
	httpresp.OK(c, grid)
}

// Save writes one grid cell: a name creates or overwrites it, an empty name
// clears it.
func (h *AgendaHandler) Save(c *gin.Context) {
	var req ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.entry.Execute(c.Request.Context(), ucAppointment.ManualEntryInput{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
	})
	if err != nil {
		writeError(c, h.logger, err, "failed_to_save_agenda", "Erro ao salvar agenda.")
		return
	}
	httpresp.OK(c, res)
}
