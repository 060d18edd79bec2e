package lock

import (
	"context"
	"errors"
	"fmt"
)

var ErrLockNotAcquired = errors.New("agenda lock not acquired")

// Locker serializes the read-check-write sequence of a booking. Keys cover a
// professional's whole day because overlapping ranges do not share a slot id.
type Locker interface {
	WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

func AgendaKey(professionalID uint, date string) string {
	return fmt.Sprintf("lock:agenda:%d:%s", professionalID, date)
}
