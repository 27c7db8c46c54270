package models

import "time"

// Service é um serviço da barbearia (corte, barba, sobrancelha...).
// Preço sempre em centavos para evitar arredondamento de float.
type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	DurationMin int    `gorm:"not null" json:"duration_min"`
	PriceCents  int64  `gorm:"not null" json:"price_cents"`
	Active      bool   `gorm:"default:true" json:"active"`

	Category string `gorm:"size:50" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
