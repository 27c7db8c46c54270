package validators

import "time"

// IsValidHM valida string "HH:MM" (formato dos horários de expediente).
func IsValidHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}

// IsValidWorkingRange garante início estritamente antes do fim.
// Turno virando a noite (fim antes do início) não é suportado e deve
// ser barrado aqui, na entrada de dados.
func IsValidWorkingRange(startHM, endHM string) bool {
	start, err := time.Parse("15:04", startHM)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", endHM)
	if err != nil {
		return false
	}
	return end.After(start)
}
