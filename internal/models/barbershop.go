package models

import "time"

type Barbershop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	// Timezone oficial da barbearia (IANA). Todos os slots e agendamentos
	// são interpretados aqui, nunca no fuso do navegador do cliente.
	Timezone string `gorm:"size:64;not null;default:'America/Sao_Paulo'" json:"timezone"`

	MinAdvanceMinutes int `gorm:"default:0" json:"min_advance_minutes"`
	SlotStepMinutes   int `gorm:"default:15" json:"slot_step_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
