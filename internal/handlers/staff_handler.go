package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/httpresp"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/timezone"
	"github.com/winespa/spa-scheduler/internal/validators"
)

type StaffHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewStaffHandler(db *gorm.DB, auditD *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{db: db, audit: auditD}
}

// ======================================================
// REQUESTS
// ======================================================

type StaffRequest struct {
	Name         string `json:"name" binding:"required"`
	DocumentType string `json:"document_type" binding:"required"`
	Document     string `json:"document" binding:"required"`
	Specialty    string `json:"specialty"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	HiredAt      string `json:"hired_at"`
}

// ======================================================
// CREATE
// ======================================================

func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Staff{}).Where("document = ?", req.Document).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "document_already_exists", "Ya existe una manicurista con ese documento.")
		return
	}

	staff := models.Staff{
		Name:         req.Name,
		DocumentType: req.DocumentType,
		Document:     req.Document,
		Specialty:    req.Specialty,
		Phone:        req.Phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Address:      req.Address,
		Status:       "activo",
		Available:    true,
	}

	if req.HiredAt != "" {
		hired, err := time.ParseInLocation("2006-01-02", req.HiredAt, timezone.Location(""))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha de contratación inválida.")
			return
		}
		staff.HiredAt = &hired
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Error al crear la manicurista.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "staff_created",
		Entity:   "staff",
		EntityID: &staff.ID,
	})

	httpresp.Created(c, staff)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Staff{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var staff []models.Staff
	if err := q.Order("name ASC").Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Error al listar manicuristas.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Get(c *gin.Context) {
	var staff models.Staff
	if err := h.db.First(&staff, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, staff)
}

// ======================================================
// UPDATE / STATUS
// ======================================================

func (h *StaffHandler) Update(c *gin.Context) {
	var staff models.Staff
	if err := h.db.First(&staff, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece ser válido.")
		return
	}

	staff.Name = req.Name
	staff.DocumentType = req.DocumentType
	staff.Document = req.Document
	staff.Specialty = req.Specialty
	staff.Phone = req.Phone
	staff.Email = strings.ToLower(strings.TrimSpace(req.Email))
	staff.Address = req.Address

	if req.HiredAt != "" {
		hired, err := time.ParseInLocation("2006-01-02", req.HiredAt, timezone.Location(""))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha de contratación inválida.")
			return
		}
		staff.HiredAt = &hired
	}

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Error al actualizar la manicurista.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "staff_updated",
		Entity:   "staff",
		EntityID: &staff.ID,
	})

	httpresp.OK(c, staff)
}

type StaffStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=activo inactivo"`
}

// SetStatus toggles activo/inactivo. An inactive manicurista cannot receive
// new appointments; her existing ones are untouched.
func (h *StaffHandler) SetStatus(c *gin.Context) {
	var staff models.Staff
	if err := h.db.First(&staff, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}

	var req StaffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Estado inválido.")
		return
	}

	staff.Status = req.Status
	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Error al actualizar la manicurista.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "staff_status_changed",
		Entity:   "staff",
		EntityID: &staff.ID,
		Metadata: map[string]any{"status": staff.Status},
	})

	httpresp.OK(c, staff)
}
