package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null;default:''" json:"client_phone"`

	ProfessionalID *uint `gorm:"uniqueIndex:idx_agenda_slot,priority:1" json:"professional_id"`
	ServiceID      *uint `json:"service_id"`

	// Date is "YYYY-MM-DD"; StartTime and EndTime are "HH:MM", so both sort
	// lexically.
	Date      string `gorm:"size:10;not null;index;uniqueIndex:idx_agenda_slot,priority:2" json:"date"`
	StartTime string `gorm:"size:5;not null;uniqueIndex:idx_agenda_slot,priority:3" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'agendado'" json:"status"`

	ReminderEnabled bool       `gorm:"not null;default:false" json:"reminder_enabled"`
	ReminderSentAt  *time.Time `json:"reminder_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
