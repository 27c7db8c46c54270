package booking

import (
	"context"
	"sync"
	"time"

	domain "github.com/agendaregua/agenda-api/internal/domain/booking"
	"github.com/agendaregua/agenda-api/internal/models"
)

// fakeRepo implementa domain.Repository em memória. CreateAppointment
// reproduz o contrato do repositório real: o insert é atômico e de dois
// commits sobrepostos concorrentes no máximo um vence.
type fakeRepo struct {
	mu sync.Mutex

	shop         models.Barbershop
	services     map[uint]models.Service
	workingHours map[int]models.WorkingHours
	appointments []models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: models.Barbershop{
			ID:              1,
			Name:            "Barbearia Régua",
			Slug:            "regua",
			Timezone:        "America/Sao_Paulo",
			SlotStepMinutes: 45,
		},
		services:     map[uint]models.Service{},
		workingHours: map[int]models.WorkingHours{},
		nextID:       1,
	}
}

func (r *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != r.shop.ID {
		return nil, domain.ErrBarbershopNotFound
	}
	shop := r.shop
	return &shop, nil
}

func (r *fakeRepo) GetServices(_ context.Context, barbershopID uint, serviceIDs []uint) ([]models.Service, error) {
	if len(serviceIDs) == 0 {
		return nil, domain.ErrNoServices
	}

	out := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		s, ok := r.services[id]
		if !ok || s.BarbershopID != barbershopID {
			return nil, domain.ErrServiceNotFound
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 1, BarbershopID: barbershopID, Name: name, Phone: phone, Email: email}, nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := r.workingHours[weekday]
	if !ok {
		return nil, nil
	}
	return &wh, nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID && r.appointments[i].BarberID == barberID {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.BarberID != ap.BarberID || existing.Status != string(domain.StatusScheduled) {
			continue
		}
		if existing.StartTime.Before(ap.EndTime) && ap.StartTime.Before(existing.EndTime) {
			return domain.ErrTimeConflict
		}
	}

	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return domain.ErrAppointmentNotFound
}

func (r *fakeRepo) scheduledCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusScheduled) {
			n++
		}
	}
	return n
}

var _ domain.Repository = (*fakeRepo)(nil)
