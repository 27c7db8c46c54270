package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	BookingRef       string    `json:"booking_ref"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ServiceNames     []string  `json:"service_names"`
	TotalDurationMin int       `json:"total_duration_min"`
	TotalPriceCents  int64     `json:"total_price_cents"`
}
