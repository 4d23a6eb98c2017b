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

type PurchaseHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPurchaseHandler(db *gorm.DB, auditD *audit.Dispatcher) *PurchaseHandler {
	return &PurchaseHandler{db: db, audit: auditD}
}

type PurchaseItemRequest struct {
	SupplyID uint    `json:"supply_id" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	UnitCost float64 `json:"unit_cost" binding:"required,gt=0"`
}

type PurchaseRequest struct {
	SupplierID   uint                  `json:"supplier_id" binding:"required"`
	Date         string                `json:"date" binding:"required"`
	Observations string                `json:"observations"`
	Items        []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create registers the purchase and raises the stock of every supply in the
// same transaction.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(""))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	var supplier models.Supplier
	if err := h.db.First(&supplier, req.SupplierID).Error; err != nil {
		httperr.NotFound(c, "supplier_not_found", "Proveedor no encontrado.")
		return
	}
	if supplier.Status != "activo" {
		httperr.BadRequest(c, "supplier_inactive", "El proveedor no está activo.")
		return
	}

	var created models.Purchase

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.PurchaseItem, 0, len(req.Items))

		for _, it := range req.Items {
			var supply models.Supply
			if err := tx.First(&supply, it.SupplyID).Error; err != nil {
				return httperr.ErrBusinessMsg("supply_not_found", "Insumo no encontrado.")
			}

			supply.Stock += it.Quantity
			if err := tx.Save(&supply).Error; err != nil {
				return err
			}

			subtotal := float64(it.Quantity) * it.UnitCost
			total += subtotal
			items = append(items, models.PurchaseItem{
				SupplyID: it.SupplyID,
				Quantity: it.Quantity,
				UnitCost: it.UnitCost,
				Subtotal: subtotal,
			})
		}

		purchase := models.Purchase{
			SupplierID:   req.SupplierID,
			Date:         date,
			Total:        total,
			Items:        items,
			Observations: req.Observations,
		}

		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		created = purchase
		return nil
	})

	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "purchase_created",
		Entity:   "purchase",
		EntityID: &created.ID,
	})

	httpresp.Created(c, created)
}

func (h *PurchaseHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Purchase{}).
		Preload("Supplier").
		Preload("Items").
		Preload("Items.Supply")

	if supplierID := c.Query("supplier_id"); supplierID != "" {
		q = q.Where("supplier_id = ?", supplierID)
	}

	var purchases []models.Purchase
	if err := q.Order("date DESC").Find(&purchases).Error; err != nil {
		httperr.Internal(c, "failed_to_list_purchases", "Error al listar compras.")
		return
	}

	httpresp.List(c, purchases)
}

func (h *PurchaseHandler) Get(c *gin.Context) {
	var purchase models.Purchase
	if err := h.db.
		Preload("Supplier").
		Preload("Items").
		Preload("Items.Supply").
		First(&purchase, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, purchase)
}
