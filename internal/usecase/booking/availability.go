package booking

import (
	"context"
	"time"

	domain "github.com/agendaregua/agenda-api/internal/domain/booking"
	"github.com/agendaregua/agenda-api/internal/domain/schedule"
	"github.com/agendaregua/agenda-api/internal/timezone"
)

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceIDs   []uint
	Date         time.Time
}

// GetAvailability calcula os slots do dia para exibição. Resultado é
// consultivo: o commit sempre revalida (CreateBooking), porque outros
// agendamentos podem ter entrado entre a consulta e o clique.
type GetAvailability struct {
	repo domain.Repository

	now func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]schedule.Slot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// Ancora a data pedida no timezone da barbearia: só os componentes
	// ano/mês/dia importam, nunca o fuso de quem consultou.
	loc := timezone.Location(shop.Timezone)
	date := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)

	services, err := uc.repo.GetServices(ctx, in.BarbershopID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totals := schedule.Aggregate(services)
	if totals.DurationMin <= 0 {
		return nil, domain.ErrNoServices
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	window, err := schedule.BuildWindow(wh, date, loc)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return []schedule.Slot{}, nil
	}

	existing, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarberID,
		window.Start,
		window.End,
	)
	if err != nil {
		return nil, err
	}

	minAdvance := shop.MinAdvanceMinutes
	if minAdvance < 0 {
		minAdvance = 0
	}
	minStart := uc.now().In(loc).Add(time.Duration(minAdvance) * time.Minute)

	return schedule.GenerateSlots(
		window,
		existing,
		totals.DurationMin,
		shop.SlotStepMinutes,
		minStart,
	), nil
}
