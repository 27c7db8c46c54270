package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/agendaregua/agenda-api/internal/models"
	"github.com/agendaregua/agenda-api/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por barbearia
// --------------------------------------------------

// resolve o timezone oficial da barbearia
func locationFromShop(shop *models.Barbershop) *time.Location {
	if shop != nil {
		return timezone.Location(shop.Timezone)
	}
	return timezone.Location("")
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}

// parseDateQuery lê a data crua da query string; o use case ancora os
// componentes no timezone da barbearia.
func parseDateQuery(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// parseServiceIDs lê "1,2,2" de service_ids (duplicata = serviço em dobro).
func parseServiceIDs(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
