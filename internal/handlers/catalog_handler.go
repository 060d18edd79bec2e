package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/catalog"
)

// ======================================================
// SERVICES
// ======================================================

type ServiceHandler struct {
	create *ucCatalog.CreateService
	list   *ucCatalog.ListServices
	get    *ucCatalog.GetService
	logger *zap.Logger
}

func NewServiceHandler(
	create *ucCatalog.CreateService,
	list *ucCatalog.ListServices,
	get *ucCatalog.GetService,
	logger *zap.Logger,
) *ServiceHandler {
	return &ServiceHandler{create: create, list: list, get: get, logger: logger}
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	svcs, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, svcs)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), req.Name, req.DurationMin)
	if err != nil {
		writeError(c, h.logger, err, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ======================================================
// PROFESSIONALS
// ======================================================

type ProfessionalHandler struct {
	save   *ucCatalog.SaveProfessional
	remove *ucCatalog.DeleteProfessional
	list   *ucCatalog.ListProfessionals
	logger *zap.Logger
}

func NewProfessionalHandler(
	save *ucCatalog.SaveProfessional,
	remove *ucCatalog.DeleteProfessional,
	list *ucCatalog.ListProfessionals,
	logger *zap.Logger,
) *ProfessionalHandler {
	return &ProfessionalHandler{save: save, remove: remove, list: list, logger: logger}
}

type SaveProfessionalRequest struct {
	Name       string `json:"name" binding:"required"`
	ShiftStart string `json:"shift_start" binding:"required"`
	ShiftEnd   string `json:"shift_end" binding:"required"`
	ServiceIDs []uint `json:"service_ids"`
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	pros, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}
	httpresp.List(c, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	h.saveWithID(c, 0, http.StatusCreated)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	h.saveWithID(c, id, http.StatusOK)
}

func (h *ProfessionalHandler) saveWithID(c *gin.Context, id uint, status int) {
	var req SaveProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.save.Execute(c.Request.Context(), ucCatalog.SaveProfessionalInput{
		ID:         id,
		Name:       req.Name,
		ShiftStart: req.ShiftStart,
		ShiftEnd:   req.ShiftEnd,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		writeError(c, h.logger, err, "failed_to_save_professional", "Erro ao salvar profissional.")
		return
	}
	c.JSON(status, p)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, "failed_to_delete_professional", "Erro ao excluir profissional.")
		return
	}
	c.Status(http.StatusNoContent)
}
