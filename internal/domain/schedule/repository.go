package schedule

import (
	"context"
	"time"

	"github.com/winespa/spa-scheduler/internal/models"
)

// Repository is the engine's view of the store. The appointment write
// methods that carry conflict invariants (CreateAppointment,
// SaveAppointmentChecked) must run their existence checks and the write as
// one serialized transaction: two concurrent bookings for the same
// (staff, date, time) must not both succeed.
type Repository interface {
	// -------- Directories --------
	GetStaff(ctx context.Context, id uint) (*models.Staff, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetServices(ctx context.Context, ids []uint) ([]models.Service, error)

	// -------- Appointments --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	// CreateAppointment inserts the appointment and its service rows after
	// verifying, under lock, that neither the staff member nor the client
	// holds another active appointment at the same date and start time.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// SaveAppointmentChecked re-runs the conflict checks excluding the
	// appointment itself, replaces its service rows and saves, atomically.
	SaveAppointmentChecked(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// FinalizeAppointment saves the finalized appointment and creates its
	// sale in one transaction. If a sale already references the
	// appointment, no second one is created.
	FinalizeAppointment(ctx context.Context, ap *models.Appointment, sale *models.Sale) error

	ListActiveAppointmentsForDay(ctx context.Context, staffID uint, date time.Time) ([]models.Appointment, error)
	ListAppointmentsForPeriod(ctx context.Context, staffID, clientID uint, from, to time.Time) ([]models.Appointment, error)
	ListAppointmentsByNovelty(ctx context.Context, noveltyID uint) ([]models.Appointment, error)

	// -------- Novelties --------
	GetNovelty(ctx context.Context, id uint) (*models.Novelty, error)

	// ActiveNoveltyForDay returns the single non-annulled novelty for
	// (staff, date), or nil when there is none.
	ActiveNoveltyForDay(ctx context.Context, staffID uint, date time.Time) (*models.Novelty, error)

	// CreateNovelty inserts after verifying, under lock, that no other
	// non-annulled novelty exists for the same (staff, date).
	CreateNovelty(ctx context.Context, n *models.Novelty) error

	UpdateNovelty(ctx context.Context, n *models.Novelty) error
	ListNovelties(ctx context.Context, staffID uint, from, to time.Time, state string) ([]models.Novelty, error)
}
