package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendaregua/agenda-api/internal/domain/booking"
	"github.com/agendaregua/agenda-api/internal/httperr"
	"github.com/agendaregua/agenda-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrBarbershopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

// GetServices resolve todos os serviços pedidos dentro do tenant.
// Qualquer id desconhecido, inativo ou de outra barbearia derruba o
// pedido inteiro. Ids duplicados são legítimos (serviço em dobro) e
// voltam duplicados no resultado.
func (r *BookingGormRepository) GetServices(
	ctx context.Context,
	barbershopID uint,
	serviceIDs []uint,
) ([]models.Service, error) {

	if len(serviceIDs) == 0 {
		return nil, domain.ErrNoServices
	}

	var found []models.Service
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = true AND id IN ?", barbershopID, serviceIDs).
		Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	services := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		s, ok := byID[id]
		if !ok {
			return nil, domain.ErrServiceNotFound
		}
		services = append(services, s)
	}

	return services, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &wh, nil
}

// --------------------------------------------------
// Appointments (leitura)
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			barberID, end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointments (escrita)
// --------------------------------------------------

// CreateAppointment insere dentro de uma transação: varre conflitos com
// FOR UPDATE (serializa commits concorrentes do mesmo barbeiro) e conta
// com a exclusion constraint do Postgres como última defesa.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
				ap.BarberID,
				ap.EndTime,
				ap.StartTime,
			).
			Count(&conflicts).Error; err != nil {
			return err
		}

		if conflicts > 0 {
			return domain.ErrTimeConflict
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return domain.ErrTimeConflict
		}
		return err
	}

	return nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Services").
		Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
