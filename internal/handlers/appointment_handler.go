package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/httpresp"
	"github.com/winespa/spa-scheduler/internal/timezone"
	ucAppointment "github.com/winespa/spa-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo         schedule.Repository
	book         *ucAppointment.Book
	reschedule   *ucAppointment.Reschedule
	transition   *ucAppointment.Transition
	listByDate   *ucAppointment.ListByDate
	listByMonth  *ucAppointment.ListByMonth
	availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	repo schedule.Repository,
	book *ucAppointment.Book,
	reschedule *ucAppointment.Reschedule,
	transition *ucAppointment.Transition,
	listByDate *ucAppointment.ListByDate,
	listByMonth *ucAppointment.ListByMonth,
	availability *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:         repo,
		book:         book,
		reschedule:   reschedule,
		transition:   transition,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ClientID     uint   `json:"client_id" binding:"required"`
	StaffID      uint   `json:"staff_id" binding:"required"`
	ServiceIDs   []uint `json:"service_ids" binding:"required,min=1"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Observations string `json:"observations"`
}

type RescheduleAppointmentRequest struct {
	StaffID      *uint   `json:"staff_id"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	ServiceIDs   []uint  `json:"service_ids"`
	Observations *string `json:"observations"`
}

type TransitionRequest struct {
	Status       string `json:"status" binding:"required"`
	CancelReason string `json:"cancel_reason"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		ClientID:     req.ClientID,
		StaffID:      req.StaffID,
		ServiceIDs:   req.ServiceIDs,
		Date:         req.Date,
		Time:         req.Time,
		Observations: req.Observations,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		AppointmentID: id,
		StaffID:       req.StaffID,
		Date:          req.Date,
		Time:          req.Time,
		ServiceIDs:    req.ServiceIDs,
		Observations:  req.Observations,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	target := schedule.Status(req.Status)
	if !target.Valid() {
		httperr.BadRequest(c, "invalid_status", "Estado desconocido.")
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), ucAppointment.TransitionInput{
		AppointmentID: id,
		Target:        target,
		CancelReason:  req.CancelReason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(""))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	staffID := queryUint(c, "staff_id")
	clientID := queryUint(c, "client_id")

	list, err := h.listByDate.Execute(c.Request.Context(), staffID, clientID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	staffID := queryUint(c, "staff_id")
	clientID := queryUint(c, "client_id")

	list, err := h.listByMonth.Execute(
		c.Request.Context(),
		staffID,
		clientID,
		year,
		time.Month(month),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	staffID := queryUint(c, "staff_id")
	if staffID == 0 {
		httperr.BadRequest(c, "missing_staff", "La manicurista es obligatoria.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), staffID, dateStr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, err
	}
	return uint(id), nil
}

func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
