package schedule

import "time"

// Interval é um intervalo meio-aberto [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps aplica a regra clássica de intervalos meio-abertos:
// a.Start < b.End && b.Start < a.End. Intervalos encostados
// (a.End == b.Start) NÃO conflitam — agendamentos em sequência são válidos.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func (a Interval) Duration() time.Duration {
	return a.End.Sub(a.Start)
}
