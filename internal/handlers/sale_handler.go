package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/httpresp"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/timezone"
)

// Sales are created by the engine when an appointment is finalized; this
// handler only exposes them and registers the payment.
type SaleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSaleHandler(db *gorm.DB, auditD *audit.Dispatcher) *SaleHandler {
	return &SaleHandler{db: db, audit: auditD}
}

func (h *SaleHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Sale{}).
		Preload("Client").
		Preload("Staff").
		Preload("Items").
		Preload("Items.Service")

	if staffID := queryUint(c, "staff_id"); staffID != 0 {
		q = q.Where("staff_id = ?", staffID)
	}
	if clientID := queryUint(c, "client_id"); clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	loc := timezone.Location("")
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			q = q.Where("sold_at >= ?", from)
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			q = q.Where("sold_at < ?", to.Add(24*time.Hour))
		}
	}

	var sales []models.Sale
	if err := q.Order("sold_at DESC").Find(&sales).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Error al listar ventas.")
		return
	}

	httpresp.List(c, sales)
}

func (h *SaleHandler) Get(c *gin.Context) {
	var sale models.Sale
	if err := h.db.
		Preload("Client").
		Preload("Staff").
		Preload("Items").
		Preload("Items.Service").
		First(&sale, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, sale)
}

type PaySaleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=efectivo tarjeta transferencia"`
}

func (h *SaleHandler) Pay(c *gin.Context) {
	var sale models.Sale
	if err := h.db.First(&sale, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}

	if sale.Status == "pagada" {
		httperr.BadRequest(c, "sale_already_paid", "La venta ya está pagada.")
		return
	}

	var req PaySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Método de pago inválido.")
		return
	}

	sale.Status = "pagada"
	sale.PaymentMethod = req.PaymentMethod

	if err := h.db.Save(&sale).Error; err != nil {
		httperr.Internal(c, "failed_to_update_sale", "Error al actualizar la venta.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "sale_paid",
		Entity:   "sale",
		EntityID: &sale.ID,
		Metadata: map[string]any{"payment_method": sale.PaymentMethod},
	})

	httpresp.OK(c, sale)
}
