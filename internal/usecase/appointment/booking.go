package appointment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// withAgendaLock runs fn under the professional's day lock and inside one
// transaction, so the conflict check and the write see the same agenda.
func withAgendaLock(
	ctx context.Context,
	locker lock.Locker,
	repo domain.Repository,
	professionalID uint,
	date string,
	fn func(ctx context.Context, tx domain.Repository) error,
) error {

	err := locker.WithSlotLock(ctx, lock.AgendaKey(professionalID, date), func(ctx context.Context) error {
		return repo.WithinTx(ctx, func(tx domain.Repository) error {
			return fn(ctx, tx)
		})
	})
	if errors.Is(err, lock.ErrLockNotAcquired) {
		return httperr.ErrBusiness(httperr.CodeSlotBusy)
	}
	return err
}

// assertNoOverlap checks [start, end) against every appointment in existing
// except excludeID. Status is not considered.
func assertNoOverlap(
	existing []models.Appointment,
	start, end domain.TimeOfDay,
	excludeID uint,
) error {

	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		s, e, err := domain.Interval(ap)
		if err != nil {
			return fmt.Errorf("appointment %d has an unreadable interval %q-%q: %w", ap.ID, ap.StartTime, ap.EndTime, err)
		}
		if domain.Overlaps(start, end, s, e) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}
	return nil
}
