package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromBusiness writes the response matching a business error. It returns
// false when err carries no business code so the caller can fall back to a
// 500.
func FromBusiness(c *gin.Context, err error) bool {
	switch CodeOf(err) {
	case CodeInvalidFormat:
		BadRequest(c, CodeInvalidFormat, "Data ou hora inválida.")
	case CodeNotFound:
		NotFound(c, CodeNotFound, "Registro não encontrado.")
	case CodeIneligibleProfessional:
		Unprocessable(c, CodeIneligibleProfessional, "Esse profissional não está vinculado ao serviço selecionado.")
	case CodeSlotConflict:
		Conflict(c, CodeSlotConflict, "Conflito de horário: já existe agendamento nesse intervalo.")
	case CodeUnsupportedRange:
		BadRequest(c, CodeUnsupportedRange, "Horário ultrapassa o fim do dia.")
	case CodeSlotBusy:
		Conflict(c, CodeSlotBusy, "Horário sendo reservado por outra pessoa, tente novamente.")
	case CodeInvalidState:
		Unprocessable(c, CodeInvalidState, "Agendamento não pode mudar para esse status.")
	default:
		return false
	}
	return true
}
