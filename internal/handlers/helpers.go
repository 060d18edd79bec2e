package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

// idParam reads a positive numeric path parameter, answering 400 itself when
// it is not one.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// writeError renders business errors with their mapped status and logs
// everything else as a 500.
func writeError(c *gin.Context, logger *zap.Logger, err error, code, message string) {
	if httperr.FromBusiness(c, err) {
		return
	}
	logger.Error(message,
		zap.String("error_code", code),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	httperr.Internal(c, code, message)
}
