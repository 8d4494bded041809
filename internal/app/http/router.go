package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"orderflow/internal/app/http/handler"
	"orderflow/internal/app/http/middleware"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)

	r.GET("/health", h.Health)

	r.POST("/orders", h.OrderCreate)
	r.GET("/orders/:id", h.OrderGet)

	r.GET("/events", h.EventList)
	r.GET("/events/:name/listeners", h.EventListeners)

	return r
}
