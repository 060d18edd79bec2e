package dto

import "time"

type AppointmentListDTO struct {
	ID               uint       `json:"id"`
	Date             string     `json:"date"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	Status           string     `json:"status"`
	ClientName       string     `json:"client_name"`
	ClientPhone      string     `json:"client_phone"`
	ProfessionalID   *uint      `json:"professional_id"`
	ProfessionalName string     `json:"professional_name"`
	ServiceID        *uint      `json:"service_id"`
	ServiceName      string     `json:"service_name"`
	ReminderEnabled  bool       `json:"reminder_enabled"`
	ReminderSentAt   *time.Time `json:"reminder_sent_at"`
}
