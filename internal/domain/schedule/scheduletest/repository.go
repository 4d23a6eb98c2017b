// Package scheduletest provides an in-memory schedule.Repository for
// exercising the engine without a database. It mirrors the conflict and
// uniqueness rules of the real store, minus the locking.
package scheduletest

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/models"
)

type Repository struct {
	mu sync.Mutex

	Staff        map[uint]models.Staff
	Clients      map[uint]models.Client
	Services     map[uint]models.Service
	Appointments map[uint]*models.Appointment
	Novelties    map[uint]*models.Novelty
	Sales        []models.Sale

	nextAppointmentID uint
	nextNoveltyID     uint
}

func NewRepository() *Repository {
	return &Repository{
		Staff:        make(map[uint]models.Staff),
		Clients:      make(map[uint]models.Client),
		Services:     make(map[uint]models.Service),
		Appointments: make(map[uint]*models.Appointment),
		Novelties:    make(map[uint]*models.Novelty),
	}
}

// -------- Directories --------

func (r *Repository) GetStaff(_ context.Context, id uint) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.Staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *Repository) GetClient(_ context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.Clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *Repository) GetServices(_ context.Context, ids []uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Service
	for _, id := range ids {
		if s, ok := r.Services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// -------- Appointments --------

func (r *Repository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.Appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *Repository) assertNoConflicts(ap *models.Appointment, excludeID uint) error {
	for _, other := range r.Appointments {
		if other.ID == excludeID {
			continue
		}
		if !schedule.Status(other.Status).IsActive() {
			continue
		}
		if !other.Date.Equal(ap.Date) || other.StartTime != ap.StartTime {
			continue
		}
		if other.StaffID == ap.StaffID {
			return httperr.ErrBusinessMsg(
				"already_booked",
				"la manicurista ya tiene una cita programada a esta hora",
			)
		}
		if other.ClientID == ap.ClientID {
			return httperr.ErrBusinessMsg(
				"client_already_booked",
				"el cliente ya tiene una cita programada a esta hora",
			)
		}
	}
	return nil
}

func (r *Repository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.assertNoConflicts(ap, 0); err != nil {
		return err
	}

	r.nextAppointmentID++
	ap.ID = r.nextAppointmentID
	cp := *ap
	r.Appointments[ap.ID] = &cp
	return nil
}

func (r *Repository) SaveAppointmentChecked(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := r.assertNoConflicts(ap, ap.ID); err != nil {
		return err
	}

	cp := *ap
	r.Appointments[ap.ID] = &cp
	return nil
}

func (r *Repository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ap
	r.Appointments[ap.ID] = &cp
	return nil
}

func (r *Repository) FinalizeAppointment(
	_ context.Context,
	ap *models.Appointment,
	sale *models.Sale,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists := false
	for _, s := range r.Sales {
		if s.AppointmentID == ap.ID {
			exists = true
			break
		}
	}
	if !exists && sale != nil {
		r.Sales = append(r.Sales, *sale)
	}

	cp := *ap
	r.Appointments[ap.ID] = &cp
	return nil
}

func (r *Repository) ListActiveAppointmentsForDay(
	_ context.Context,
	staffID uint,
	date time.Time,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.Appointments {
		if ap.StaffID == staffID && ap.Date.Equal(date) && schedule.Status(ap.Status).IsActive() {
			out = append(out, r.withAssociations(ap))
		}
	}
	return out, nil
}

// withAssociations mimics the store's Client and Staff preloads.
func (r *Repository) withAssociations(ap *models.Appointment) models.Appointment {
	cp := *ap
	cp.Client = r.Clients[ap.ClientID]
	cp.Staff = r.Staff[ap.StaffID]
	return cp
}

func (r *Repository) ListAppointmentsForPeriod(
	_ context.Context,
	staffID, clientID uint,
	from, to time.Time,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.Appointments {
		if staffID != 0 && ap.StaffID != staffID {
			continue
		}
		if clientID != 0 && ap.ClientID != clientID {
			continue
		}
		if ap.Date.Before(from) || !ap.Date.Before(to) {
			continue
		}
		out = append(out, r.withAssociations(ap))
	}
	return out, nil
}

func (r *Repository) ListAppointmentsByNovelty(
	_ context.Context,
	noveltyID uint,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.Appointments {
		if ap.NoveltyID != nil && *ap.NoveltyID == noveltyID &&
			schedule.Status(ap.Status) == schedule.StatusCancelledByNovelty {
			out = append(out, r.withAssociations(ap))
		}
	}
	return out, nil
}

// -------- Novelties --------

func (r *Repository) GetNovelty(_ context.Context, id uint) (*models.Novelty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.Novelties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *Repository) ActiveNoveltyForDay(
	_ context.Context,
	staffID uint,
	date time.Time,
) (*models.Novelty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.Novelties {
		if n.StaffID == staffID && n.Date.Equal(date) && !schedule.IsAnnulled(n) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *Repository) CreateNovelty(_ context.Context, n *models.Novelty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.Novelties {
		if other.StaffID == n.StaffID && other.Date.Equal(n.Date) && !schedule.IsAnnulled(other) {
			return httperr.ErrBusinessMsg(
				"novelty_exists",
				"ya existe una novedad registrada para esta manicurista en la fecha seleccionada",
			)
		}
	}

	r.nextNoveltyID++
	n.ID = r.nextNoveltyID
	cp := *n
	r.Novelties[n.ID] = &cp
	return nil
}

func (r *Repository) UpdateNovelty(_ context.Context, n *models.Novelty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Novelties[n.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *n
	r.Novelties[n.ID] = &cp
	return nil
}

func (r *Repository) ListNovelties(
	_ context.Context,
	staffID uint,
	from, to time.Time,
	state string,
) ([]models.Novelty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Novelty
	for _, n := range r.Novelties {
		if staffID != 0 && n.StaffID != staffID {
			continue
		}
		if state != "" && n.State != state {
			continue
		}
		if !from.IsZero() && n.Date.Before(from) {
			continue
		}
		if !to.IsZero() && n.Date.After(to) {
			continue
		}
		out = append(out, *n)
	}
	return out, nil
}

var _ schedule.Repository = (*Repository)(nil)
