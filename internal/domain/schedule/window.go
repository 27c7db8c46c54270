package schedule

import (
	"errors"
	"time"

	"github.com/agendaregua/agenda-api/internal/models"
)

// ErrOvernightWindow indica um expediente com fim antes do início
// (turno virando a noite). Não suportado: a configuração deve ser
// rejeitada na entrada, e aqui falhamos cedo se ela escapou.
var ErrOvernightWindow = errors.New("schedule: working window end must be after start")

// Window é o expediente de um barbeiro ancorado em uma data concreta,
// já no timezone da barbearia. Lunch é opcional (pausa indisponível).
type Window struct {
	Start time.Time
	End   time.Time
	Lunch *Interval
}

// BuildWindow ancora o expediente semanal na data informada.
// Retorna nil (sem erro) para dia inativo ou sem horário configurado.
func BuildWindow(wh *models.WorkingHours, date time.Time, loc *time.Location) (*Window, error) {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return nil, nil
	}

	start, err := anchorHM(wh.StartTime, date, loc)
	if err != nil {
		return nil, err
	}
	end, err := anchorHM(wh.EndTime, date, loc)
	if err != nil {
		return nil, err
	}

	if !end.After(start) {
		return nil, ErrOvernightWindow
	}

	w := &Window{Start: start, End: end}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		ls, err := anchorHM(wh.LunchStart, date, loc)
		if err != nil {
			return nil, err
		}
		le, err := anchorHM(wh.LunchEnd, date, loc)
		if err != nil {
			return nil, err
		}
		if !le.After(ls) {
			return nil, ErrOvernightWindow
		}
		w.Lunch = &Interval{Start: ls, End: le}
	}

	return w, nil
}

// Contains responde se o intervalo candidato cabe inteiro no expediente,
// sem invadir a pausa de almoço.
func (w *Window) Contains(iv Interval) bool {
	if iv.Start.Before(w.Start) || iv.End.After(w.End) {
		return false
	}
	if w.Lunch != nil && iv.Overlaps(*w.Lunch) {
		return false
	}
	return true
}

// anchorHM converte "HH:MM" em um instante absoluto na data e timezone dados.
func anchorHM(hm string, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}
