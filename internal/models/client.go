package models

import "time"

// Cliente simples, sem login, vinculado à barbearia.
// O telefone identifica o cliente dentro da barbearia: agendamentos
// repetidos com o mesmo telefone reaproveitam o mesmo registro.
type Client struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index:idx_clients_shop_phone" json:"barbershop_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;index:idx_clients_shop_phone" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
