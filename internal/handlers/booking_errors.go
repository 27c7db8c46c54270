package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agendaregua/agenda-api/internal/domain/booking"
	"github.com/agendaregua/agenda-api/internal/httperr"
)

// writeBookingError traduz a rejeição tipada do orquestrador para o
// corpo estruturado da API. Cada Kind tem código e status próprios para
// o front distinguir "esse horário acabou de ser ocupado" de "fora do
// expediente".
func writeBookingError(c *gin.Context, err error) {
	var be *booking.Error
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno ao processar o agendamento.")
		return
	}

	switch be.Kind {
	case booking.KindNotFound:
		httperr.NotFound(c, be.Code, "Registro não encontrado.")
	case booking.KindConflict:
		httperr.Conflict(c, be.Code, "Conflito de horário: esse slot acabou de ser ocupado.")
	case booking.KindOutsideWorkingHours:
		httperr.UnprocessableEntity(c, be.Code, "Fora do horário de atendimento.")
	case booking.KindSlotInPast:
		httperr.UnprocessableEntity(c, be.Code, "Horário já passou ou não respeita a antecedência mínima.")
	default:
		httperr.BadRequest(c, be.Code, "Dados inválidos.")
	}
}
