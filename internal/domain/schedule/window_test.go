package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaregua/agenda-api/internal/models"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestBuildWindowInactiveDay(t *testing.T) {
	loc := saoPaulo(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	w, err := BuildWindow(&models.WorkingHours{Active: false}, date, loc)
	require.NoError(t, err)
	assert.Nil(t, w)

	w, err = BuildWindow(nil, date, loc)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestBuildWindowAnchorsToDateAndTimezone(t *testing.T) {
	loc := saoPaulo(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	w, err := BuildWindow(&models.WorkingHours{
		Active:    true,
		StartTime: "09:00",
		EndTime:   "18:00",
	}, date, loc)

	require.NoError(t, err)
	require.NotNil(t, w)

	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, loc), w.End)
	assert.Nil(t, w.Lunch)
}

func TestBuildWindowOvernightRejected(t *testing.T) {
	loc := saoPaulo(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	_, err := BuildWindow(&models.WorkingHours{
		Active:    true,
		StartTime: "22:00",
		EndTime:   "02:00",
	}, date, loc)

	assert.ErrorIs(t, err, ErrOvernightWindow)
}

func TestWindowContainsRespectsLunch(t *testing.T) {
	loc := saoPaulo(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	w, err := BuildWindow(&models.WorkingHours{
		Active:     true,
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
	}, date, loc)
	require.NoError(t, err)
	require.NotNil(t, w.Lunch)

	mk := func(sh, sm, eh, em int) Interval {
		return Interval{
			Start: time.Date(2026, 3, 2, sh, sm, 0, 0, loc),
			End:   time.Date(2026, 3, 2, eh, em, 0, 0, loc),
		}
	}

	assert.True(t, w.Contains(mk(9, 0, 9, 30)))
	assert.True(t, w.Contains(mk(13, 0, 14, 0)))   // encostado no fim do almoço
	assert.True(t, w.Contains(mk(11, 30, 12, 0)))  // encostado no início do almoço
	assert.False(t, w.Contains(mk(11, 45, 12, 15))) // invade o almoço
	assert.False(t, w.Contains(mk(8, 30, 9, 30)))   // começa antes do expediente
	assert.False(t, w.Contains(mk(17, 45, 18, 15))) // termina depois do expediente
}
