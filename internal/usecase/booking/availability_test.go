package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendaregua/agenda-api/internal/domain/booking"
)

func newAvailabilityUC(repo *fakeRepo) *GetAvailability {
	uc := NewGetAvailability(repo)
	uc.now = func() time.Time {
		loc, _ := time.LoadLocation("America/Sao_Paulo")
		return time.Date(2026, 3, 1, 12, 0, 0, 0, loc)
	}
	return uc
}

func availabilityInput() AvailabilityInput {
	date, _ := time.Parse("2006-01-02", testMonday)
	return AvailabilityInput{
		BarbershopID: 1,
		BarberID:     7,
		ServiceIDs:   []uint{10},
		Date:         date,
	}
}

func TestAvailabilityMarksBookedSlot(t *testing.T) {
	repo := seedRepo(t)
	seedExistingAppointment(t, repo)
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	windowEnd := time.Date(2026, 3, 2, 18, 0, 0, 0, loc)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s.Available

		// nenhum slot vaza do expediente
		assert.False(t, s.End.After(windowEnd))
	}

	// passo 45, serviço de 30min, ocupado 10:00–10:45
	assert.True(t, byStart["09:00"])
	assert.False(t, byStart["09:45"]) // 09:45+30 invade 10:00
	assert.True(t, byStart["10:45"])  // encostado: legal
}

func TestAvailabilityClosedDayEmpty(t *testing.T) {
	repo := seedRepo(t)
	uc := newAvailabilityUC(repo)

	in := availabilityInput()
	in.Date = in.Date.AddDate(0, 0, 1) // terça fechada

	slots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityMultiServiceDuration(t *testing.T) {
	repo := seedRepo(t)
	uc := newAvailabilityUC(repo)

	in := availabilityInput()
	in.ServiceIDs = []uint{10, 11} // 45 minutos no total

	slots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.Equal(t, 45*time.Minute, s.End.Sub(s.Start))
	}

	// último slot em que 45min ainda cabem antes das 18:00
	last := slots[len(slots)-1]
	assert.Equal(t, "17:15", last.Start.Format("15:04"))
}

func TestAvailabilityUnknownServiceRejected(t *testing.T) {
	repo := seedRepo(t)
	uc := newAvailabilityUC(repo)

	in := availabilityInput()
	in.ServiceIDs = []uint{999}

	_, err := uc.Execute(context.Background(), in)
	assert.Equal(t, domain.KindNotFound, domain.ErrKind(err))
}
