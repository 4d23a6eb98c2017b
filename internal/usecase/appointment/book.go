package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID uint
	StaffID  uint

	ServiceIDs []uint

	Date         string
	Time         string
	Observations string
}

// ======================================================
// USE CASE
// ======================================================

// Book runs the full conflict check and creates the appointment in
// pendiente. The checks run cheapest first: staff activity, operating
// window, novelty disposition, then the locked double-booking scan that the
// repository performs together with the insert.
type Book struct {
	repo   schedule.Repository
	window schedule.Window
	audit  *audit.Dispatcher
}

func NewBook(
	repo schedule.Repository,
	window schedule.Window,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:   repo,
		window: window,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// 1. Manicurista existe y está activa
	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("staff_not_found", "manicurista no encontrada")
	}
	if !staff.IsActive() {
		return nil, httperr.ErrBusinessMsg(
			"staff_inactive",
			fmt.Sprintf("la manicurista %s no está activa", staff.Name),
		)
	}

	// 2. Hora dentro del horario de atención
	date, startAt, err := parseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if !uc.window.Contains(startAt) {
		return nil, httperr.ErrBusinessMsg(
			"outside_window",
			fmt.Sprintf("la hora debe estar entre %s y %s", uc.window.Open, uc.window.Close),
		)
	}

	// 3. Disposición del slot según la novedad del día
	if err := uc.checkSlotFree(ctx, in.StaffID, date, startAt); err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("client_not_found", "cliente no encontrado")
	}
	if !client.Active {
		return nil, httperr.ErrBusinessMsg(
			"client_inactive",
			fmt.Sprintf("el cliente %s no está activo", client.Name),
		)
	}

	services, err := resolveServices(ctx, uc.repo, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	price, duration := schedule.ComputeTotals(services)

	ap := &models.Appointment{
		ClientID:         in.ClientID,
		StaffID:          in.StaffID,
		PrimaryServiceID: services[0].ID,
		Date:             date,
		StartTime:        startAt.String(),
		TotalPrice:       price,
		TotalDuration:    duration,
		Status:           string(schedule.StatusPending),
		Observations:     in.Observations,
		Services:         serviceRows(0, services),
	}

	// 4 y 5. Sin doble reserva (manicurista y cliente), atómico con el insert
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// checkSlotFree rejects when the slot containing the start time is blocked
// by the staff member's novelty for that date.
func (uc *Book) checkSlotFree(
	ctx context.Context,
	staffID uint,
	date time.Time,
	startAt schedule.Clock,
) error {

	novelty, err := uc.repo.ActiveNoveltyForDay(ctx, staffID, date)
	if err != nil {
		return err
	}
	if novelty == nil {
		return nil
	}

	slot, ok := uc.window.SlotAt(startAt)
	if !ok {
		return httperr.ErrBusinessMsg(
			"outside_window",
			fmt.Sprintf("la hora debe estar entre %s y %s", uc.window.Open, uc.window.Close),
		)
	}

	if schedule.NoveltyBlocks(novelty, slot) {
		return httperr.ErrBusinessMsg("slot_blocked", schedule.NoveltyBlockReason(novelty))
	}
	return nil
}

// ======================================================
// HELPERS (shared by book and reschedule)
// ======================================================

func parseDateTime(dateStr, timeStr string) (time.Time, schedule.Clock, error) {
	loc := timezone.Location("")

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, 0, httperr.ErrBusinessMsg("invalid_date", "fecha inválida")
	}

	startAt, err := schedule.ParseClock(timeStr)
	if err != nil {
		return time.Time{}, 0, httperr.ErrBusinessMsg("invalid_time", "hora inválida")
	}

	return day, startAt, nil
}

// resolveServices loads the requested services in the requested order and
// rejects missing or inactive ones.
func resolveServices(
	ctx context.Context,
	repo schedule.Repository,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, httperr.ErrBusinessMsg("services_required", "la cita debe incluir al menos un servicio")
	}

	found, err := repo.GetServices(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	ordered := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusinessMsg(
				"service_not_found",
				fmt.Sprintf("servicio %d no encontrado", id),
			)
		}
		if !s.IsActive() {
			return nil, httperr.ErrBusinessMsg(
				"service_inactive",
				fmt.Sprintf("el servicio %s no está activo", s.Name),
			)
		}
		ordered = append(ordered, s)
	}

	return ordered, nil
}

func serviceRows(appointmentID uint, services []models.Service) []models.AppointmentService {
	rows := make([]models.AppointmentService, 0, len(services))
	for i, s := range services {
		rows = append(rows, models.AppointmentService{
			AppointmentID: appointmentID,
			ServiceID:     s.ID,
			Position:      i,
		})
	}
	return rows
}
