package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

// ApplyReply sets the status a client asked for, whatever the current one.
func ApplyReply(ap *models.Appointment, status Status) {
	ap.Status = string(status)
}

func EnableReminder(ap *models.Appointment) {
	ap.ReminderEnabled = true
	ap.ReminderSentAt = nil
}

func DisableReminder(ap *models.Appointment) {
	ap.ReminderEnabled = false
	ap.ReminderSentAt = nil
}

func MarkReminderSent(ap *models.Appointment, at time.Time) {
	ap.ReminderEnabled = true
	ap.ReminderSentAt = &at
}

// Interval returns the parsed [start, end) of a stored appointment.
func Interval(ap models.Appointment) (TimeOfDay, TimeOfDay, error) {
	start, err := ParseTimeOfDay(ap.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimeOfDay(ap.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
