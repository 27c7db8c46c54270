package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código público do agendamento, usado no link de confirmação.
	BookingRef string `gorm:"size:36;uniqueIndex;not null" json:"booking_ref"`

	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Um agendamento cobre 1..N serviços, executados em sequência pelo
	// mesmo barbeiro. Duração e preço totais ficam desnormalizados aqui;
	// a fonte da verdade é a soma dos serviços no momento da criação.
	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	TotalDurationMin int   `gorm:"not null" json:"total_duration_min"`
	TotalPriceCents  int64 `gorm:"not null" json:"total_price_cents"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
