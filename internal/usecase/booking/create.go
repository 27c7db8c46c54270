package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agendaregua/agenda-api/internal/audit"
	domain "github.com/agendaregua/agenda-api/internal/domain/booking"
	"github.com/agendaregua/agenda-api/internal/domain/schedule"
	"github.com/agendaregua/agenda-api/internal/infra/lock"
	"github.com/agendaregua/agenda-api/internal/models"
	"github.com/agendaregua/agenda-api/internal/timezone"
)

const (
	lockTTL          = 10 * time.Second
	lockRetryDelay   = 20 * time.Millisecond
	lockRetryTimeout = 3 * time.Second
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	// Serviços em sequência, duplicatas permitidas.
	ServiceIDs []uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking é o orquestrador do agendamento: revalida tudo no
// commit, nunca confia no horário de fim vindo do cliente e garante
// que de dois pedidos sobrepostos concorrentes só um vence.
type CreateBooking struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher

	now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		audit:  audit,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Barbearia (dona do timezone e das políticas)
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, domain.ErrInvalidParams
	}

	// --------------------------------------------------
	// 2. Serviços do tenant + agregação de duração/preço
	// --------------------------------------------------
	services, err := uc.repo.GetServices(ctx, in.BarbershopID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totals := schedule.Aggregate(services)
	if totals.DurationMin <= 0 {
		return nil, domain.ErrNoServices
	}

	// --------------------------------------------------
	// 3. Fim autoritativo: start + soma das durações
	// --------------------------------------------------
	end := start.Add(time.Duration(totals.DurationMin) * time.Minute)
	candidate := schedule.Interval{Start: start, End: end}

	// --------------------------------------------------
	// 4. Antecedência mínima no timezone da barbearia
	// --------------------------------------------------
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance < 0 {
		minAdvance = 0
	}

	now := uc.now().In(loc)
	if !start.After(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, domain.ErrSlotInPast
	}

	// --------------------------------------------------
	// 5. Expediente do barbeiro naquele dia
	// --------------------------------------------------
	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}

	window, err := schedule.BuildWindow(wh, start, loc)
	if err != nil {
		return nil, err
	}
	if window == nil || !window.Contains(candidate) {
		return nil, domain.ErrOutsideWorkingHours
	}

	// --------------------------------------------------
	// 6. Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Janela crítica: lock por barbeiro + recheck + insert
	// --------------------------------------------------
	key := fmt.Sprintf("booking:barber:%d", in.BarberID)

	token, err := uc.acquireLock(ctx, key)
	if err != nil {
		return nil, err
	}
	defer uc.locker.Release(ctx, key, token)

	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, start, end)
	if err != nil {
		return nil, err
	}

	if schedule.HasConflict(candidate, existing) {
		uc.dispatchConflict(in, start, end)
		return nil, domain.ErrTimeConflict
	}

	// Totais contam duplicatas (serviço em dobro); o vínculo N:N não —
	// a tabela de junção guarda cada serviço uma vez só.
	ap := &models.Appointment{
		BookingRef:       uuid.NewString(),
		BarbershopID:     in.BarbershopID,
		BarberID:         in.BarberID,
		ClientID:         client.ID,
		Services:         dedupeServices(services),
		TotalDurationMin: totals.DurationMin,
		TotalPriceCents:  totals.PriceCents,
		StartTime:        start,
		EndTime:          end,
		Status:           string(domain.InitialStatus()),
		Notes:            in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if domain.ErrKind(err) == domain.KindConflict {
			uc.dispatchConflict(in, start, end)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       audit.ActionAppointmentCreated,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

// acquireLock insiste por um curto período: contenção aqui significa
// outro commit do mesmo barbeiro em andamento, que normalmente termina
// em milissegundos. Se não soltar a tempo, devolvemos conflito para o
// cliente reconsultar os horários.
func (uc *CreateBooking) acquireLock(ctx context.Context, key string) (string, error) {
	deadline := time.Now().Add(lockRetryTimeout)

	for {
		token, err := uc.locker.Acquire(ctx, key, lockTTL)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, lock.ErrNotAcquired) {
			return "", err
		}
		if time.Now().After(deadline) {
			return "", domain.ErrTimeConflict
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
}

func dedupeServices(services []models.Service) []models.Service {
	seen := make(map[uint]bool, len(services))
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

func (uc *CreateBooking) dispatchConflict(in CreateBookingInput, start, end time.Time) {
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       audit.ActionAppointmentConflict,
		Entity:       "appointment",
		Metadata: map[string]any{
			"start": start,
			"end":   end,
		},
	})
}
