package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/httpresp"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/validators"
)

type SupplierHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSupplierHandler(db *gorm.DB, auditD *audit.Dispatcher) *SupplierHandler {
	return &SupplierHandler{db: db, audit: auditD}
}

type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	NIT     string `json:"nit" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Supplier{}).Where("nit = ?", req.NIT).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "nit_already_exists", "Ya existe un proveedor con ese NIT.")
		return
	}

	supplier := models.Supplier{
		Name:    req.Name,
		NIT:     req.NIT,
		Phone:   req.Phone,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Address: req.Address,
		Status:  "activo",
	}

	if err := h.db.Create(&supplier).Error; err != nil {
		httperr.Internal(c, "failed_to_create_supplier", "Error al crear el proveedor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "supplier_created",
		Entity:   "supplier",
		EntityID: &supplier.ID,
	})

	httpresp.Created(c, supplier)
}

func (h *SupplierHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Supplier{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var suppliers []models.Supplier
	if err := q.Order("name ASC").Find(&suppliers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_suppliers", "Error al listar proveedores.")
		return
	}

	httpresp.List(c, suppliers)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	var supplier models.Supplier
	if err := h.db.First(&supplier, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, supplier)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var supplier models.Supplier
	if err := h.db.First(&supplier, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece ser válido.")
		return
	}

	supplier.Name = req.Name
	supplier.NIT = req.NIT
	supplier.Phone = req.Phone
	supplier.Email = strings.ToLower(strings.TrimSpace(req.Email))
	supplier.Address = req.Address

	if err := h.db.Save(&supplier).Error; err != nil {
		httperr.Internal(c, "failed_to_update_supplier", "Error al actualizar el proveedor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "supplier_updated",
		Entity:   "supplier",
		EntityID: &supplier.ID,
	})

	httpresp.OK(c, supplier)
}
