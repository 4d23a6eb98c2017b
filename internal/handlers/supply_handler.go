package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/httpresp"
	"github.com/winespa/spa-scheduler/internal/models"
)

type SupplyHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSupplyHandler(db *gorm.DB, auditD *audit.Dispatcher) *SupplyHandler {
	return &SupplyHandler{db: db, audit: auditD}
}

type SupplyRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
	Stock    int    `json:"stock"`
}

func (h *SupplyHandler) Create(c *gin.Context) {
	var req SupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	supply := models.Supply{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Stock:    req.Stock,
		Status:   "activo",
	}

	if err := h.db.Create(&supply).Error; err != nil {
		httperr.Internal(c, "failed_to_create_supply", "Error al crear el insumo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "supply_created",
		Entity:   "supply",
		EntityID: &supply.ID,
	})

	httpresp.Created(c, supply)
}

func (h *SupplyHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Supply{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var supplies []models.Supply
	if err := q.Order("name ASC").Find(&supplies).Error; err != nil {
		httperr.Internal(c, "failed_to_list_supplies", "Error al listar insumos.")
		return
	}

	httpresp.List(c, supplies)
}

func (h *SupplyHandler) Get(c *gin.Context) {
	var supply models.Supply
	if err := h.db.First(&supply, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, supply)
}

func (h *SupplyHandler) Update(c *gin.Context) {
	var supply models.Supply
	if err := h.db.First(&supply, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}

	var req SupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	supply.Name = req.Name
	supply.Category = req.Category
	supply.Unit = req.Unit
	supply.Stock = req.Stock

	if err := h.db.Save(&supply).Error; err != nil {
		httperr.Internal(c, "failed_to_update_supply", "Error al actualizar el insumo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "supply_updated",
		Entity:   "supply",
		EntityID: &supply.ID,
	})

	httpresp.OK(c, supply)
}
