package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/httpresp"
	"github.com/winespa/spa-scheduler/internal/storage"
	"github.com/winespa/spa-scheduler/internal/timezone"
	ucNovelty "github.com/winespa/spa-scheduler/internal/usecase/novelty"
)

// ======================================================
// HANDLER
// ======================================================

type NoveltyHandler struct {
	repo     schedule.Repository
	create   *ucNovelty.Create
	annul    *ucNovelty.Annul
	uploader *storage.Uploader
}

func NewNoveltyHandler(
	repo schedule.Repository,
	create *ucNovelty.Create,
	annul *ucNovelty.Annul,
	uploader *storage.Uploader,
) *NoveltyHandler {
	return &NoveltyHandler{
		repo:     repo,
		create:   create,
		annul:    annul,
		uploader: uploader,
	}
}

// ======================================================
// CREATE
// ======================================================

// Create accepts multipart form data because incapacidad carries a support
// document; every other state sends plain fields.
func (h *NoveltyHandler) Create(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.PostForm("staff_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "La manicurista es obligatoria.")
		return
	}

	in := ucNovelty.CreateInput{
		StaffID:      uint(staffID),
		Date:         c.PostForm("date"),
		State:        c.PostForm("state"),
		ArrivalTime:  c.PostForm("arrival_time"),
		AbsenceKind:  c.PostForm("absence_kind"),
		AbsenceStart: c.PostForm("absence_start"),
		AbsenceEnd:   c.PostForm("absence_end"),
		Shift:        c.PostForm("shift"),
		Observations: c.PostForm("observations"),
	}

	if daysStr := c.PostForm("vacation_days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Días de vacaciones inválidos.")
			return
		}
		in.VacationDays = &days
	}

	if schedule.NoveltyState(in.State) == schedule.NoveltyLeave {
		key, err := h.uploadSupportDoc(c)
		if err != nil {
			return
		}
		in.SupportDocKey = key
	}

	out, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *NoveltyHandler) uploadSupportDoc(c *gin.Context) (string, error) {
	file, err := c.FormFile("support_doc")
	if err != nil {
		httperr.BadRequest(c, "missing_support_doc", "Debes adjuntar el soporte de la incapacidad.")
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Error al leer el archivo.")
		return "", err
	}
	defer src.Close()

	key, err := h.uploader.UploadSupportDoc(
		c.Request.Context(),
		file.Filename,
		file.Header.Get("Content-Type"),
		src,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Error al subir el soporte.")
		return "", err
	}
	return key, nil
}

// ======================================================
// ANNUL
// ======================================================

type AnnulNoveltyRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *NoveltyHandler) Annul(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		return
	}

	var req AnnulNoveltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "El motivo de anulación es requerido.")
		return
	}

	out, err := h.annul.Execute(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *NoveltyHandler) List(c *gin.Context) {
	loc := timezone.Location("")

	var from, to time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			from = parsed
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			to = parsed
		}
	}

	novelties, err := h.repo.ListNovelties(
		c.Request.Context(),
		queryUint(c, "staff_id"),
		from,
		to,
		c.Query("state"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_novelties", "Error al listar novedades.")
		return
	}

	httpresp.List(c, novelties)
}

func (h *NoveltyHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		return
	}

	novelty, err := h.repo.GetNovelty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, novelty)
}
