package schedule

import "github.com/agendaregua/agenda-api/internal/models"

// HasConflict responde se o candidato sobrepõe algum agendamento
// existente não cancelado do mesmo barbeiro.
func HasConflict(candidate Interval, existing []models.Appointment) bool {
	for i := range existing {
		if existing[i].Status == "cancelled" {
			continue
		}
		if candidate.Overlaps(Interval{Start: existing[i].StartTime, End: existing[i].EndTime}) {
			return true
		}
	}
	return false
}
