package catalog

import (
	"strings"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

func ValidateService(name string, durationMin int) error {
	if strings.TrimSpace(name) == "" || durationMin <= 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidFormat)
	}
	if _, err := domain.AddMinutes(0, durationMin); err != nil {
		return err
	}
	return nil
}

func ValidateProfessional(name, shiftStart, shiftEnd string) error {
	if strings.TrimSpace(name) == "" {
		return httperr.ErrBusiness(httperr.CodeInvalidFormat)
	}
	_, err := domain.ParseShift(shiftStart, shiftEnd)
	return err
}

// DedupIDs drops zero and repeated ids, keeping first occurrence order.
func DedupIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
