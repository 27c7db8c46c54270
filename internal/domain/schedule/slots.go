package schedule

import (
	"time"

	"github.com/agendaregua/agenda-api/internal/models"
)

// Slot é um candidato de horário, transitório: calculado por consulta,
// nunca persistido nem cacheado (os agendamentos por baixo mudam).
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// GenerateSlots varre o expediente do início ao fim com passo fixo e
// devolve todos os candidatos cuja duração total ainda cabe na janela.
//
// Slots no passado (antes de minStart), em cima do almoço ou em conflito
// com agendamento existente saem marcados Available=false em vez de
// omitidos — o front mostra riscado em vez de sumir com o horário.
//
// window nil (dia fechado) produz lista vazia. A computação é pura e
// determinística: mesmo input, mesmos slots.
func GenerateSlots(
	window *Window,
	existing []models.Appointment,
	durationMin int,
	stepMin int,
	minStart time.Time,
) []Slot {

	if window == nil || durationMin <= 0 {
		return []Slot{}
	}

	if stepMin <= 0 {
		stepMin = 15
	}

	duration := time.Duration(durationMin) * time.Minute
	step := time.Duration(stepMin) * time.Minute

	slots := []Slot{}

	for cur := window.Start; !cur.Add(duration).After(window.End); cur = cur.Add(step) {
		iv := Interval{Start: cur, End: cur.Add(duration)}

		available := window.Contains(iv) &&
			!HasConflict(iv, existing) &&
			cur.After(minStart)

		slots = append(slots, Slot{
			Start:     iv.Start,
			End:       iv.End,
			Available: available,
		})
	}

	return slots
}
