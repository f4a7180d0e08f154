package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workearnest-byte/MoMo-More/internal/app/middleware"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/flow"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/services"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils"
)

type AcceptanceHandler struct {
	service services.AcceptanceServiceInterface
	store   services.SessionStore
}

func NewAcceptanceHandler(service services.AcceptanceServiceInterface, store services.SessionStore) *AcceptanceHandler {
	return &AcceptanceHandler{
		service: service,
		store:   store,
	}
}

// Accept confirms the selected offer for the session. Conflicts (no score,
// not approved, another acceptance pending) come back 409; validation
// problems with the payload come back 422.
func (h *AcceptanceHandler) Accept(c *gin.Context) {
	var body models.AcceptanceRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.SessionID(c)
	acceptance, err := h.service.Accept(c.Request.Context(), sessionID, body)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acceptance":  acceptance,
		"next_screen": flow.ScreenConfirmation,
		"state":       flow.StateConfirmed,
	})
}

// GetAcceptance returns the confirmed acceptance for the session. With none
// on record the reply is a 404 carrying the screen the session should be on
// instead.
func (h *AcceptanceHandler) GetAcceptance(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	ctx := c.Request.Context()

	acceptance, found, err := h.store.GetAcceptance(ctx, sessionID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	if !found {
		snap, snapErr := h.store.Snapshot(ctx, sessionID)
		if snapErr != nil {
			c.JSON(statusForError(snapErr), gin.H{"error": snapErr.Error(), "code": utils.GetErrorCode(snapErr)})
			return
		}
		decision := flow.Resolve(flow.ScreenConfirmation, snap)
		c.JSON(http.StatusNotFound, gin.H{"error": "no acceptance on record", "redirect": decision})
		return
	}

	c.JSON(http.StatusOK, acceptance)
}
