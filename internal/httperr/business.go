package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeInvalidFormat          = "invalid_format"
	CodeNotFound               = "not_found"
	CodeIneligibleProfessional = "ineligible_professional"
	CodeSlotConflict           = "slot_conflict"
	CodeUnsupportedRange       = "unsupported_range"
	CodeSlotBusy               = "slot_busy"
	CodeInvalidState           = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" when err is not a
// BusinessError.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// IsExclusionConflict reports whether err is a postgres unique or exclusion
// violation, i.e. the database rejected an overlapping agenda row.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
