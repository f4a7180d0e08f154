package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workearnest-byte/MoMo-More/internal/app/middleware"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/flow"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/services"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils"
)

type FlowHandler struct {
	store services.SessionStore
}

func NewFlowHandler(store services.SessionStore) *FlowHandler {
	return &FlowHandler{store: store}
}

// ResolveScreen answers "may this session see this screen". Unknown screens
// are 404; known screens always resolve, possibly to a redirect.
func (h *FlowHandler) ResolveScreen(c *gin.Context) {
	requested, ok := flow.KnownScreen(c.Param("screen"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown screen"})
		return
	}

	sessionID := middleware.SessionID(c)
	snap, err := h.store.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	c.JSON(http.StatusOK, flow.Resolve(requested, snap))
}

// Reset clears the session's records, sending it back to the entry screen.
func (h *FlowHandler) Reset(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if err := h.store.Reset(c.Request.Context(), sessionID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"next_screen": flow.ScreenStart, "state": flow.StateStart})
}
