package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Directories
// --------------------------------------------------

func (r *ScheduleGormRepository) GetStaff(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ScheduleGormRepository) GetServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Services.Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// assertNoConflicts locks and counts active appointments at the same date
// and start time, for the staff member and for the client. excludeID skips
// the appointment being edited.
func assertNoConflicts(
	tx *gorm.DB,
	ap *models.Appointment,
	excludeID uint,
) error {

	active := []string{string(schedule.StatusPending), string(schedule.StatusInProcess)}

	staffQ := tx.Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"staff_id = ? AND date = ? AND start_time = ? AND status IN ?",
			ap.StaffID, ap.Date, ap.StartTime, active,
		)
	if excludeID != 0 {
		staffQ = staffQ.Where("id <> ?", excludeID)
	}

	var count int64
	if err := staffQ.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusinessMsg(
			"already_booked",
			"la manicurista ya tiene una cita programada a esta hora",
		)
	}

	clientQ := tx.Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"client_id = ? AND date = ? AND start_time = ? AND status IN ?",
			ap.ClientID, ap.Date, ap.StartTime, active,
		)
	if excludeID != 0 {
		clientQ = clientQ.Where("id <> ?", excludeID)
	}

	if err := clientQ.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusinessMsg(
			"client_already_booked",
			"el cliente ya tiene una cita programada a esta hora",
		)
	}

	return nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflicts(tx, ap, 0); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

func (r *ScheduleGormRepository) SaveAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflicts(tx, ap, ap.ID); err != nil {
			return err
		}

		// Replace the service rows wholesale; positions were rebuilt by the
		// caller.
		if err := tx.
			Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}

		rows := ap.Services
		for i := range rows {
			rows[i].ID = 0
			rows[i].AppointmentID = ap.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Save(ap).Error
	})
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *ScheduleGormRepository) FinalizeAppointment(
	ctx context.Context,
	ap *models.Appointment,
	sale *models.Sale,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Sale{}).
			Where("appointment_id = ?", ap.ID).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 && sale != nil {
			if err := tx.Create(sale).Error; err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Save(ap).Error
	})
}

func (r *ScheduleGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	staffID uint,
	date time.Time,
) ([]models.Appointment, error) {

	active := []string{string(schedule.StatusPending), string(schedule.StatusInProcess)}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		Where("staff_id = ? AND date = ? AND status IN ?", staffID, date, active).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	staffID, clientID uint,
	from, to time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		Preload("PrimaryService").
		Preload("Services.Service").
		Where("date >= ? AND date < ?", from, to)

	if staffID != 0 {
		q = q.Where("staff_id = ?", staffID)
	}
	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsByNovelty(
	ctx context.Context,
	noveltyID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		Where(
			"novelty_id = ? AND status = ?",
			noveltyID, string(schedule.StatusCancelledByNovelty),
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Novelties
// --------------------------------------------------

func (r *ScheduleGormRepository) GetNovelty(
	ctx context.Context,
	id uint,
) (*models.Novelty, error) {

	var n models.Novelty
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *ScheduleGormRepository) ActiveNoveltyForDay(
	ctx context.Context,
	staffID uint,
	date time.Time,
) (*models.Novelty, error) {

	var n models.Novelty
	err := r.db.WithContext(ctx).
		Where(
			"staff_id = ? AND date = ? AND state <> ?",
			staffID, date, string(schedule.NoveltyAnnulled),
		).
		First(&n).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *ScheduleGormRepository) CreateNovelty(
	ctx context.Context,
	n *models.Novelty,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Novelty{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"staff_id = ? AND date = ? AND state <> ?",
				n.StaffID, n.Date, string(schedule.NoveltyAnnulled),
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusinessMsg(
				"novelty_exists",
				"ya existe una novedad registrada para esta manicurista en la fecha seleccionada",
			)
		}

		// Legacy data can hold several by-hours absences on one date; keep
		// them from overlapping even then.
		if n.State == string(schedule.NoveltyAbsence) && n.AbsenceKind == schedule.AbsenceByHours {
			if err := tx.Model(&models.Novelty{}).
				Where(
					"staff_id = ? AND date = ? AND state = ? AND absence_kind = ? AND absence_start < ? AND absence_end > ?",
					n.StaffID, n.Date,
					string(schedule.NoveltyAbsence), schedule.AbsenceByHours,
					n.AbsenceEnd, n.AbsenceStart,
				).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return httperr.ErrBusinessMsg(
					"absence_overlap",
					"ya existe otra ausencia en este horario",
				)
			}
		}

		return tx.Create(n).Error
	})
}

func (r *ScheduleGormRepository) UpdateNovelty(
	ctx context.Context,
	n *models.Novelty,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(n).Error
}

func (r *ScheduleGormRepository) ListNovelties(
	ctx context.Context,
	staffID uint,
	from, to time.Time,
	state string,
) ([]models.Novelty, error) {

	q := r.db.WithContext(ctx).Preload("Staff")

	if staffID != 0 {
		q = q.Where("staff_id = ?", staffID)
	}
	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("date < ?", to)
	}
	if state != "" {
		q = q.Where("state = ?", state)
	}

	var novelties []models.Novelty
	if err := q.
		Order("date DESC").
		Find(&novelties).Error; err != nil {
		return nil, err
	}
	return novelties, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
