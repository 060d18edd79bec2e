package models

import "time"

// Professional works a single daily shift; ShiftStart and ShiftEnd are
// "HH:MM" and never cross midnight.
type Professional struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	ShiftStart string `gorm:"size:5;not null" json:"shift_start"`
	ShiftEnd   string `gorm:"size:5;not null" json:"shift_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfessionalService links a professional to a service they may perform.
type ProfessionalService struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index;not null" json:"professional_id"`
	ServiceID      uint `gorm:"index;not null" json:"service_id"`
}
