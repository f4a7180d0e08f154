package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/trustscore"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils"
)

// TrustScoreHandler exposes the embedded scoring engine on the same route
// shape the standalone scoring service uses, so the gateway client works
// unchanged against either.
type TrustScoreHandler struct {
}

func NewTrustScoreHandler() *TrustScoreHandler {
	return &TrustScoreHandler{}
}

func (h *TrustScoreHandler) Calculate(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	var body models.TrustScoreRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, validationDetail("body", err.Error()))
		return
	}

	cleanedMSISDN := utils.CleanMSISDN(body.MSISDN)
	if _, err := utils.IsValidMSISDN(cleanedMSISDN); err != nil {
		c.JSON(http.StatusBadRequest, validationDetail("msisdn", err.Error()))
		return
	}
	if !body.ConsentGiven {
		c.JSON(http.StatusBadRequest, validationDetail("consent_given", "User consent required"))
		return
	}

	profile := trustscore.SimulateUsageProfile(cleanedMSISDN)
	score, factors := trustscore.ScoreProfile(profile)
	options := trustscore.GenerateLoanOptions(score, profile.CurrentBalance)

	response := models.TrustScoreResponse{
		RequestID:          uuid.New().String(),
		TrustScore:         score,
		Approved:           len(options) > 0,
		LoanOptions:        options,
		DataSourcesChecked: trustscore.DataSources,
		CalculationTimeMs:  time.Since(started).Milliseconds(),
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	}

	logger.Info(ctx, "Trust score computed requestId=%s score=%v factors=%d options=%d",
		response.RequestID, score, len(factors), len(options))

	c.JSON(http.StatusOK, response)
}

// validationDetail mirrors the standalone scoring service's error body so the
// gateway client parses both the same way.
func validationDetail(field string, msg string) gin.H {
	return gin.H{
		"detail": []gin.H{
			{"loc": []string{"body", field}, "msg": msg, "type": "value_error"},
		},
	}
}
