package booking

import "errors"

// Kind classifica a rejeição de um pedido de agendamento. O chamador
// decide a resposta pelo Kind, nunca por comparação de mensagem.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindOutsideWorkingHours Kind = "outside_working_hours"
	KindSlotInPast          Kind = "slot_in_past"
	KindConflict            Kind = "conflict"
	KindInvalid             Kind = "invalid"
)

// Error é a rejeição tipada do orquestrador de agendamento.
type Error struct {
	Kind Kind
	Code string
}

func (e *Error) Error() string {
	return e.Code
}

func NewError(kind Kind, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

// ErrKind extrai o Kind de um erro do orquestrador, ou "" se não for um.
func ErrKind(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// Rejeições conhecidas.
var (
	ErrBarbershopNotFound  = NewError(KindNotFound, "barbershop_not_found")
	ErrBarberNotFound      = NewError(KindNotFound, "barber_not_found")
	ErrServiceNotFound     = NewError(KindNotFound, "service_not_found")
	ErrAppointmentNotFound = NewError(KindNotFound, "appointment_not_found")

	ErrOutsideWorkingHours = NewError(KindOutsideWorkingHours, "outside_working_hours")
	ErrSlotInPast          = NewError(KindSlotInPast, "slot_in_past")
	ErrTimeConflict        = NewError(KindConflict, "time_conflict")

	ErrNoServices    = NewError(KindInvalid, "no_services_selected")
	ErrInvalidState  = NewError(KindInvalid, "invalid_state")
	ErrInvalidParams = NewError(KindInvalid, "invalid_date_or_time")
)
