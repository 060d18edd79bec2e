// Package memory keeps the whole agenda in process memory. It backs tests and
// local runs with DATABASE_URL=memory:// and mirrors the postgres behavior the
// use cases rely on: link order, (professional, date, start) uniqueness and
// transactional rollback.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

type state struct {
	services      []models.Service
	professionals []models.Professional
	links         []models.ProfessionalService
	appointments  []models.Appointment
	auditLogs     []models.AuditLog

	nextID uint
}

func (s *state) id() uint {
	s.nextID++
	return s.nextID
}

type Repository struct {
	mu   *sync.Mutex
	txMu *sync.Mutex
	st   *state
	now  func() time.Time
	inTx bool

	// undo holds the inverse of each appointment write made inside a
	// transaction; it is nil outside one.
	undo *[]func()
}

func New() *Repository {
	return &Repository{
		mu:   &sync.Mutex{},
		txMu: &sync.Mutex{},
		st:   &state{},
		now:  time.Now,
	}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *Repository) CreateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s.ID = r.st.id()
	s.CreatedAt, s.UpdatedAt = now, now
	r.st.services = append(r.st.services, *s)
	return nil
}

func (r *Repository) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.st.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *Repository) ListServices(_ context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(r.st.services)
	slices.SortStableFunc(out, func(a, b models.Service) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *Repository) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.professionalIndex(id); i >= 0 {
		p := r.st.professionals[i]
		return &p, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *Repository) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	return r.ListProfessionalsByName(ctx, 0)
}

func (r *Repository) ListProfessionalsByName(_ context.Context, limit int) ([]models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(r.st.professionals)
	slices.SortStableFunc(out, func(a, b models.Professional) int {
		return strings.Compare(a.Name, b.Name)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Repository) ListLinks(_ context.Context) ([]models.ProfessionalService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.st.links), nil
}

func (r *Repository) ListServiceIDsForProfessional(_ context.Context, professionalID uint) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []uint
	for _, l := range r.st.links {
		if l.ProfessionalID == professionalID {
			ids = append(ids, l.ServiceID)
		}
	}
	return ids, nil
}

func (r *Repository) ListProfessionalsForService(_ context.Context, serviceID uint) ([]models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Professional
	seen := map[uint]bool{}
	for _, l := range r.st.links {
		if l.ServiceID != serviceID || seen[l.ProfessionalID] {
			continue
		}
		if i := r.professionalIndex(l.ProfessionalID); i >= 0 {
			seen[l.ProfessionalID] = true
			out = append(out, r.st.professionals[i])
		}
	}
	return out, nil
}

func (r *Repository) HasServiceLink(_ context.Context, professionalID, serviceID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.st.links {
		if l.ProfessionalID == professionalID && l.ServiceID == serviceID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) SaveProfessional(_ context.Context, p *models.Professional, serviceIDs []uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if p.ID == 0 {
		p.ID = r.st.id()
		p.CreatedAt = now
		p.UpdatedAt = now
		r.st.professionals = append(r.st.professionals, *p)
	} else {
		i := r.professionalIndex(p.ID)
		if i < 0 {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
		p.UpdatedAt = now
		r.st.professionals[i] = *p
		r.st.links = slices.DeleteFunc(r.st.links, func(l models.ProfessionalService) bool {
			return l.ProfessionalID == p.ID
		})
	}

	for _, sid := range serviceIDs {
		r.st.links = append(r.st.links, models.ProfessionalService{
			ID:             r.st.id(),
			ProfessionalID: p.ID,
			ServiceID:      sid,
		})
	}
	return nil
}

func (r *Repository) DeleteProfessional(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.professionalIndex(id)
	if i < 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	r.st.professionals = slices.Delete(r.st.professionals, i, i+1)
	r.st.links = slices.DeleteFunc(r.st.links, func(l models.ProfessionalService) bool {
		return l.ProfessionalID == id
	})
	return nil
}

func (r *Repository) professionalIndex(id uint) int {
	return slices.IndexFunc(r.st.professionals, func(p models.Professional) bool {
		return p.ID == id
	})
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *Repository) ListAppointmentsForDay(_ context.Context, professionalID uint, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.st.appointments {
		if sameProfessional(ap.ProfessionalID, professionalID) && ap.Date == date {
			out = append(out, cloneAppointment(ap))
		}
	}
	slices.SortStableFunc(out, func(a, b models.Appointment) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return out, nil
}

func (r *Repository) FindAppointmentAt(_ context.Context, professionalID uint, date, start string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.st.appointments {
		if sameProfessional(ap.ProfessionalID, professionalID) && ap.Date == date && ap.StartTime == start {
			c := cloneAppointment(ap)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *Repository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotTaken(ap) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	now := r.now()
	ap.ID = r.st.id()
	ap.CreatedAt, ap.UpdatedAt = now, now
	if ap.Status == "" {
		ap.Status = string(domain.InitialStatus())
	}
	r.st.appointments = append(r.st.appointments, cloneAppointment(*ap))

	id := ap.ID
	r.record(func() {
		if i := r.appointmentIndex(id); i >= 0 {
			r.st.appointments = slices.Delete(r.st.appointments, i, i+1)
		}
	})
	return nil
}

func (r *Repository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.appointmentIndex(ap.ID)
	if i < 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if r.slotTaken(ap) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	prev := r.st.appointments[i]
	ap.UpdatedAt = r.now()
	r.st.appointments[i] = cloneAppointment(*ap)

	r.record(func() {
		if i := r.appointmentIndex(prev.ID); i >= 0 {
			r.st.appointments[i] = prev
		}
	})
	return nil
}

func (r *Repository) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.appointmentIndex(id); i >= 0 {
		prev := r.st.appointments[i]
		r.st.appointments = slices.Delete(r.st.appointments, i, i+1)
		r.record(func() {
			r.st.appointments = append(r.st.appointments, prev)
		})
	}
	return nil
}

func (r *Repository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.appointmentIndex(id); i >= 0 {
		c := cloneAppointment(r.st.appointments[i])
		return &c, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *Repository) ListAppointments(_ context.Context, filter domain.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.st.appointments {
		if filter.Date != "" && ap.Date != filter.Date {
			continue
		}
		if filter.FromDate != "" && ap.Date < filter.FromDate {
			continue
		}
		out = append(out, cloneAppointment(ap))
	}
	sortByDateStart(out)
	return out, nil
}

func (r *Repository) ListPendingReminders(_ context.Context, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.st.appointments {
		if ap.Date == date && ap.ReminderEnabled && ap.ReminderSentAt == nil {
			out = append(out, cloneAppointment(ap))
		}
	}
	sortByDateStart(out)
	return out, nil
}

// WithinTx serializes transactions and, when fn fails, undoes only the
// appointment writes fn made, newest first. Writes made outside the
// transaction meanwhile survive. Ids handed out inside a failed transaction
// are not reused.
func (r *Repository) WithinTx(ctx context.Context, fn func(repo domain.Repository) error) error {
	if r.inTx {
		return fn(r)
	}

	r.txMu.Lock()
	defer r.txMu.Unlock()

	var undo []func()
	tx := *r
	tx.inTx = true
	tx.undo = &undo

	if err := fn(&tx); err != nil {
		r.mu.Lock()
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		r.mu.Unlock()
		return err
	}
	return nil
}

// record must be called with mu held.
func (r *Repository) record(inverse func()) {
	if r.undo != nil {
		*r.undo = append(*r.undo, inverse)
	}
}

func (r *Repository) appointmentIndex(id uint) int {
	return slices.IndexFunc(r.st.appointments, func(ap models.Appointment) bool {
		return ap.ID == id
	})
}

// slotTaken mirrors the unique (professional_id, date, start_time) index.
func (r *Repository) slotTaken(ap *models.Appointment) bool {
	if ap.ProfessionalID == nil {
		return false
	}
	for _, other := range r.st.appointments {
		if other.ID != ap.ID &&
			sameProfessional(other.ProfessionalID, *ap.ProfessionalID) &&
			other.Date == ap.Date &&
			other.StartTime == ap.StartTime {
			return true
		}
	}
	return false
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *Repository) SaveAuditLog(_ context.Context, log *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = r.st.id()
	log.CreatedAt = r.now()
	r.st.auditLogs = append(r.st.auditLogs, *log)
	return nil
}

func (r *Repository) ListAuditLogs(_ context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.AuditLog
	for i := len(r.st.auditLogs) - 1; i >= 0; i-- {
		l := r.st.auditLogs[i]
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.Entity != "" && l.Entity != filter.Entity {
			continue
		}
		if filter.From != nil && l.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !l.CreatedAt.Before(*filter.To) {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

// ===============================
// Helpers
// ===============================

func sameProfessional(ref *uint, id uint) bool {
	return ref != nil && *ref == id
}

func cloneAppointment(ap models.Appointment) models.Appointment {
	if ap.ProfessionalID != nil {
		v := *ap.ProfessionalID
		ap.ProfessionalID = &v
	}
	if ap.ServiceID != nil {
		v := *ap.ServiceID
		ap.ServiceID = &v
	}
	if ap.ReminderSentAt != nil {
		v := *ap.ReminderSentAt
		ap.ReminderSentAt = &v
	}
	return ap
}

func sortByDateStart(apps []models.Appointment) {
	slices.SortStableFunc(apps, func(a, b models.Appointment) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

// Compile-time checks
var (
	_ domain.Repository  = (*Repository)(nil)
	_ catalog.Repository = (*Repository)(nil)
	_ audit.Store        = (*Repository)(nil)
)
