package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderflow/internal/app/dto"
	"orderflow/internal/domain"
	"orderflow/internal/domain/order"
)

func (h *Handler) OrderCreate(c *gin.Context) {
	var body dto.CreateOrder
	if err := c.ShouldBind(&body); err != nil {
		h.badRequest(c, "invalid order payload")
		return
	}

	o, err := h.OrderSvc.Place(c.Request.Context(), order.Draft{
		Product:  body.Product,
		Quantity: body.Quantity,
		Email:    body.Email,
		Phone:    body.Phone,
	})
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && de.Code == domain.ErrorCodeNotificationFailed && o.ID != uuid.Nil {
			h.Log.Warn("order saved, notification failed",
				zap.String("order_id", o.ID.String()),
				zap.Error(err),
			)
			c.JSON(de.HTTPStatus, dto.OrderErrorResponse{
				Error: dto.Error{Code: string(de.Code), Message: de.Message},
				Order: toOrderDTO(o),
			})
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": toOrderDTO(o)})
}

func (h *Handler) OrderGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.badRequest(c, "order id must be a UUID")
		return
	}

	o, err := h.OrderSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": toOrderDTO(o)})
}

func toOrderDTO(o order.Order) dto.Order {
	return dto.Order{
		OrderID:   o.ID.String(),
		Product:   o.Product,
		Quantity:  o.Quantity,
		Email:     o.Email,
		Phone:     o.Phone,
		CreatedAt: o.CreatedAt,
	}
}
