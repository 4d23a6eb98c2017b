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

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, auditD *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: auditD}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	Document     string `json:"document" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Gender       string `json:"gender"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Client{}).Where("document = ?", req.Document).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "document_already_exists", "Ya existe un cliente con ese documento.")
		return
	}

	client := models.Client{
		DocumentType: req.DocumentType,
		Document:     req.Document,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Address:      req.Address,
		Gender:       req.Gender,
		Active:       true,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Error al crear el cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, client)
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR document LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// GET / UPDATE / DEACTIVATE
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece ser válido.")
		return
	}

	client.DocumentType = req.DocumentType
	client.Document = req.Document
	client.Name = req.Name
	client.Phone = req.Phone
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))
	client.Address = req.Address
	client.Gender = req.Gender

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error al actualizar el cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}

// Deactivate marks the client inactive; inactive clients cannot book.
func (h *ClientHandler) Deactivate(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		respondError(c, err)
		return
	}

	client.Active = false
	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error al actualizar el cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFrom(c),
		Action:   "client_deactivated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}
