package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agendaregua/agenda-api/internal/models"
)

func at(t *testing.T, hm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2026-03-02 "+hm)
	if err != nil {
		t.Fatalf("parse %q: %v", hm, err)
	}
	return parsed
}

func iv(t *testing.T, startHM, endHM string) Interval {
	t.Helper()
	return Interval{Start: at(t, startHM), End: at(t, endHM)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{"identical", iv(t, "10:00", "10:45"), iv(t, "10:00", "10:45"), true},
		{"partial overlap", iv(t, "10:00", "10:45"), iv(t, "10:30", "11:00"), true},
		{"contained", iv(t, "10:00", "11:00"), iv(t, "10:15", "10:30"), true},
		{"disjoint", iv(t, "10:00", "10:45"), iv(t, "12:00", "12:30"), false},
		{"back to back after", iv(t, "10:00", "10:45"), iv(t, "10:45", "11:15"), false},
		{"back to back before", iv(t, "10:45", "11:15"), iv(t, "10:00", "10:45"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// sobreposição é simétrica
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

// Confere o detector contra a definição direta de sobreposição em um
// conjunto aleatório de intervalos: toda sobreposição real é acusada,
// nenhuma falsa é inventada.
func TestHasConflictRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := at(t, "08:00")

	randomInterval := func() Interval {
		start := base.Add(time.Duration(rng.Intn(600)) * time.Minute)
		end := start.Add(time.Duration(15+rng.Intn(120)) * time.Minute)
		return Interval{Start: start, End: end}
	}

	for i := 0; i < 500; i++ {
		candidate := randomInterval()

		var existing []models.Appointment
		expected := false
		for j := 0; j < 5; j++ {
			other := randomInterval()
			existing = append(existing, models.Appointment{
				StartTime: other.Start,
				EndTime:   other.End,
				Status:    "scheduled",
			})

			if candidate.Start.Before(other.End) && other.Start.Before(candidate.End) {
				expected = true
			}
		}

		assert.Equal(t, expected, HasConflict(candidate, existing))
	}
}

func TestHasConflictIgnoresCancelled(t *testing.T) {
	candidate := iv(t, "10:00", "10:30")

	existing := []models.Appointment{
		{StartTime: at(t, "10:00"), EndTime: at(t, "10:45"), Status: "cancelled"},
	}

	assert.False(t, HasConflict(candidate, existing))
}

func TestHasConflictEmpty(t *testing.T) {
	assert.False(t, HasConflict(iv(t, "10:00", "10:30"), nil))
}
