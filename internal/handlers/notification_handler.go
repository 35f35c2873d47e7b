package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/httpresp"
	"github.com/corteturno/corteturno/internal/notify"
)

// NotificationHandler expone el polling del tablero: pendientes del
// tenant y marcado como leídas.
type NotificationHandler struct {
	store notify.Store
}

func NewNotificationHandler(store notify.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	tenantID := tenantFromContext(c)

	events, err := h.store.Pending(c.Request.Context(), tenantID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, events)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	tenantID := tenantFromContext(c)

	if err := h.store.MarkRead(c.Request.Context(), tenantID); err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}
