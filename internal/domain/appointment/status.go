package appointment

import "github.com/BruksfildServices01/agenda-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "agendado"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirm: only a scheduled appointment can be confirmed by the team.
func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// ReplyStatus maps a client's reminder reply to the status it requests.
func ReplyStatus(reply string) (Status, bool) {
	switch reply {
	case "1":
		return StatusConfirmed, true
	case "2":
		return StatusCancelled, true
	}
	return "", false
}
