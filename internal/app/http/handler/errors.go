package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"orderflow/internal/app/dto"
	"orderflow/internal/domain"
)

const codeInternal = "INTERNAL_ERROR"

// writeError renders domain errors with their own status. The cause behind a
// domain error is never shown to the client; 5xx causes are logged instead.
func (h *Handler) writeError(c *gin.Context, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		if de.HTTPStatus >= http.StatusInternalServerError {
			h.Log.Warn("request failed",
				zap.String("code", string(de.Code)),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		c.JSON(de.HTTPStatus, dto.ErrorResponse{
			Error: dto.Error{
				Code:    string(de.Code),
				Message: de.Message,
			},
		})
		return
	}

	h.Log.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: dto.Error{
			Code:    codeInternal,
			Message: "internal server error",
		},
	})
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: dto.Error{
			Code:    "BAD_REQUEST",
			Message: msg,
		},
	})
}
