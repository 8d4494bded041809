package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orderflow/internal/app/dto"
)

func (h *Handler) EventList(c *gin.Context) {
	names := h.Events.EventNames()
	resp := make([]dto.EventSummary, 0, len(names))
	for _, name := range names {
		resp = append(resp, dto.EventSummary{
			Name:      name,
			Listeners: len(h.Events.HandlersFor(name)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": resp})
}

func (h *Handler) EventListeners(c *gin.Context) {
	name := c.Param("name")
	bindings := h.Events.HandlersFor(name)

	resp := dto.EventListeners{
		Event:     name,
		Listeners: make([]dto.Listener, 0, len(bindings)),
	}
	for i, b := range bindings {
		resp.Listeners = append(resp.Listeners, dto.Listener{
			Position: i + 1,
			Priority: b.Priority(),
			Seq:      b.Seq(),
		})
	}
	c.JSON(http.StatusOK, resp)
}
