package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workearnest-byte/MoMo-More/internal/app/middleware"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/flow"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/services"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils"
)

type ApplicationHandler struct {
	service services.ApplicationServiceInterface
}

func NewApplicationHandler(service services.ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// SubmitApplication handles the apply form. On success the reply carries the
// scoring result and the screen the session should move to next.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var body models.TrustScoreRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.SessionID(c)
	response, err := h.service.SubmitApplication(c.Request.Context(), sessionID, middleware.BearerToken(c), body)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	snap := flow.Snapshot{HasTrustScore: true, Approved: response.Approved}
	decision := flow.Resolve(flow.ScreenProcessing, snap)

	c.JSON(http.StatusOK, gin.H{
		"trust_score_response": response,
		"next_screen":          decision.Resolved,
		"state":                decision.State,
	})
}

// statusForError maps the service error values onto HTTP statuses. Anything
// unrecognized is treated as internal.
func statusForError(err error) int {
	switch err {
	case consts.ErrorMsisdnFormatValidationFailed,
		consts.ErrorConsentNotGiven,
		consts.ErrorBankAccountRequired,
		consts.ErrorUnknownDisbursementMethod,
		consts.ErrorOptionIndexOutOfRange:
		return http.StatusUnprocessableEntity
	case consts.ErrorNoTrustScoreOnRecord, consts.ErrorNotApproved, consts.ErrorAcceptanceInProgress:
		return http.StatusConflict
	case consts.ErrorTrustScoreGatewayTimeout:
		return http.StatusGatewayTimeout
	case consts.ErrorTrustScoreGatewayFailed, consts.ErrorTrustScoreInvalidResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
