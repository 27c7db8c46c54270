package schedule

import "github.com/agendaregua/agenda-api/internal/models"

// Totals é o resultado da agregação de serviços de um agendamento.
type Totals struct {
	DurationMin int   `json:"duration_min"`
	PriceCents  int64 `json:"price_cents"`
}

// Aggregate soma duração e preço dos serviços selecionados.
// Serviços duplicados somam em dobro (ex: dois cortes no mesmo horário).
// Lista vazia retorna {0, 0}.
func Aggregate(services []models.Service) Totals {
	var t Totals
	for _, s := range services {
		t.DurationMin += s.DurationMin
		t.PriceCents += s.PriceCents
	}
	return t
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		DurationMin: t.DurationMin + other.DurationMin,
		PriceCents:  t.PriceCents + other.PriceCents,
	}
}
