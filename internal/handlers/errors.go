package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/middleware"
)

// respondError translates engine errors to HTTP. Validation failures and
// rule rejections are 400, unknown entities 404, impossible status jumps
// 409, anything else 500.
func respondError(c *gin.Context, err error) {
	var fieldErr *schedule.FieldError
	if errors.As(err, &fieldErr) {
		httperr.BadRequest(c, "validation_error", fieldErr.Message)
		return
	}

	var transErr *schedule.InvalidTransitionError
	if errors.As(err, &transErr) {
		httperr.Conflict(c, "invalid_transition", transErr.Error())
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		if strings.HasSuffix(be.Code, "_not_found") {
			httperr.NotFound(c, be.Code, be.Message)
			return
		}
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "recurso no encontrado")
		return
	}

	httperr.Internal(c, "internal_error", "error interno")
}

func userIDFrom(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
