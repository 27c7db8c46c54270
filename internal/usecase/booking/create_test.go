package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaregua/agenda-api/internal/audit"
	domain "github.com/agendaregua/agenda-api/internal/domain/booking"
	"github.com/agendaregua/agenda-api/internal/infra/lock"
	"github.com/agendaregua/agenda-api/internal/models"
)

// Cenário base: segunda-feira 2026-03-02, expediente 09:00–18:00,
// passo 45min, agendamento existente 10:00–10:45.

const testMonday = "2026-03-02"

func newCreateUC(repo *fakeRepo) *CreateBooking {
	uc := NewCreateBooking(repo, lock.NewMemoryLocker(), audit.NewDispatcher(nil))

	// "agora" fixo: domingo meio-dia, véspera do cenário
	uc.now = func() time.Time {
		loc, _ := time.LoadLocation("America/Sao_Paulo")
		return time.Date(2026, 3, 1, 12, 0, 0, 0, loc)
	}
	return uc
}

func seedRepo(t *testing.T) *fakeRepo {
	t.Helper()

	repo := newFakeRepo()
	repo.services[10] = models.Service{ID: 10, BarbershopID: 1, Name: "Corte", DurationMin: 30, PriceCents: 4500, Active: true}
	repo.services[11] = models.Service{ID: 11, BarbershopID: 1, Name: "Barba", DurationMin: 15, PriceCents: 2500, Active: true}

	// segunda = weekday 1
	repo.workingHours[1] = models.WorkingHours{
		BarberID:  7,
		Weekday:   1,
		Active:    true,
		StartTime: "09:00",
		EndTime:   "18:00",
	}

	return repo
}

func baseInput() CreateBookingInput {
	return CreateBookingInput{
		BarbershopID: 1,
		BarberID:     7,
		ClientName:   "João",
		ClientPhone:  "+5511999990000",
		ServiceIDs:   []uint{10},
		Date:         testMonday,
		Time:         "10:45",
	}
}

func seedExistingAppointment(t *testing.T, repo *fakeRepo) {
	t.Helper()

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	require.NoError(t, repo.CreateAppointment(context.Background(), &models.Appointment{
		BarberID:  7,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, loc),
		EndTime:   time.Date(2026, 3, 2, 10, 45, 0, 0, loc),
		Status:    string(domain.StatusScheduled),
	}))
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := seedRepo(t)
	seedExistingAppointment(t, repo)
	uc := newCreateUC(repo)

	// 10:45 encosta no fim do agendamento existente: válido
	ap, err := uc.Execute(context.Background(), baseInput())

	require.NoError(t, err)
	require.NotNil(t, ap)

	assert.Equal(t, "11:15", ap.EndTime.Format("15:04"))
	assert.Equal(t, 30, ap.TotalDurationMin)
	assert.Equal(t, int64(4500), ap.TotalPriceCents)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.NotEmpty(t, ap.BookingRef)
	assert.Equal(t, 2, repo.scheduledCount())
}

func TestCreateBookingMultiServiceTotals(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	in := baseInput()
	in.Time = "14:00"
	in.ServiceIDs = []uint{10, 11, 11} // barba em dobro, de propósito

	ap, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 60, ap.TotalDurationMin)
	assert.Equal(t, int64(9500), ap.TotalPriceCents)
	assert.Equal(t, "15:00", ap.EndTime.Format("15:04"))
}

func TestCreateBookingConflict(t *testing.T) {
	repo := seedRepo(t)
	seedExistingAppointment(t, repo)
	uc := newCreateUC(repo)

	in := baseInput()
	in.Time = "10:00"

	_, err := uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.ErrKind(err))
	assert.Equal(t, 1, repo.scheduledCount())
}

func TestCreateBookingOutsideWorkingHoursBefore(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	in := baseInput()
	in.Time = "08:30"

	_, err := uc.Execute(context.Background(), in)

	assert.Equal(t, domain.KindOutsideWorkingHours, domain.ErrKind(err))
	assert.Equal(t, 0, repo.scheduledCount())
}

func TestCreateBookingEndPastWindowRejected(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	// 17:45 + 30min = 18:15 > 18:00: não cabe no expediente
	in := baseInput()
	in.Time = "17:45"

	_, err := uc.Execute(context.Background(), in)

	assert.Equal(t, domain.KindOutsideWorkingHours, domain.ErrKind(err))
}

func TestCreateBookingClosedDay(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	in := baseInput()
	in.Date = "2026-03-03" // terça sem expediente configurado

	_, err := uc.Execute(context.Background(), in)

	assert.Equal(t, domain.KindOutsideWorkingHours, domain.ErrKind(err))
}

func TestCreateBookingSlotInPast(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	in := baseInput()
	in.Date = "2026-02-23" // segunda anterior ao "agora" fixo

	_, err := uc.Execute(context.Background(), in)

	assert.Equal(t, domain.KindSlotInPast, domain.ErrKind(err))
}

func TestCreateBookingLeadTime(t *testing.T) {
	repo := seedRepo(t)
	repo.shop.MinAdvanceMinutes = 48 * 60 // 2 dias de antecedência
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())

	assert.Equal(t, domain.KindSlotInPast, domain.ErrKind(err))
}

func TestCreateBookingUnknownService(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	in := baseInput()
	in.ServiceIDs = []uint{10, 999}

	_, err := uc.Execute(context.Background(), in)

	assert.Equal(t, domain.KindNotFound, domain.ErrKind(err))
}

func TestCreateBookingNoServices(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	in := baseInput()
	in.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), in)

	assert.Equal(t, domain.KindInvalid, domain.ErrKind(err))
}

// Repetir o mesmo pedido depois de confirmado nunca duplica: a segunda
// chamada cai em conflito com o agendamento que ela mesma criou.
func TestCreateBookingIdempotentRejection(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	in := baseInput()

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), in)
	assert.Equal(t, domain.KindConflict, domain.ErrKind(err))
	assert.Equal(t, 1, repo.scheduledCount())
}

// N pedidos concorrentes para o mesmo slot: exatamente 1 confirmado,
// N-1 rejeitados com conflito. Nunca N confirmados, nunca zero.
func TestCreateBookingConcurrentCommits(t *testing.T) {
	repo := seedRepo(t)
	uc := newCreateUC(repo)

	const n = 8

	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), baseInput())
		}(i)
	}
	wg.Wait()

	confirmed := 0
	conflicts := 0
	for _, err := range errs {
		switch {
		case err == nil:
			confirmed++
		case domain.ErrKind(err) == domain.KindConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, confirmed)
	assert.Equal(t, n-1, conflicts)
	assert.Equal(t, 1, repo.scheduledCount())
}
