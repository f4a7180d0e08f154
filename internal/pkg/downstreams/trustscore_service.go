package downstreams

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	downstreamModels "github.com/workearnest-byte/MoMo-More/internal/pkg/downstreams/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/otel"
)

// TrustScoreService issues the single scoring call of the flow. One round trip
// per application, no retries; every failure mode collapses into one generic
// error for the caller, which keeps the user on the application screen.
type TrustScoreService struct{}

func NewTrustScoreService() *TrustScoreService {
	return &TrustScoreService{}
}

// CalculateTrustScore posts the application to the scoring endpoint. The
// bearer credential is forwarded as-is; auth is opaque middleware from this
// service's point of view. The request must already satisfy the MSISDN and
// consent invariants.
func (s *TrustScoreService) CalculateTrustScore(ctx context.Context, bearerToken string, request models.TrustScoreRequest) (*models.TrustScoreResponse, error) {
	ctx, span := otel.GetTracer().Start(ctx, "CalculateTrustScore")
	defer span.End()

	url := configs.TRUSTSCORE_URL + "/routes/calculate"

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, consts.ErrorTrustScoreGatewayFailed
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if configs.TRUSTSCORE_X_API_KEY != "" {
		headers["x-api-key"] = configs.TRUSTSCORE_X_API_KEY
	}
	if bearerToken != "" {
		headers["Authorization"] = "Bearer " + bearerToken
	}

	body, err := makeAPICall(ctx, url, http.MethodPost, headers, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var response models.TrustScoreResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.Error(ctx, "Error unmarshalling trust score response: %v", err)
		return nil, consts.ErrorTrustScoreInvalidResponse
	}
	if response.RequestID == "" || response.CreatedAt == "" {
		logger.Error(ctx, "Trust score response missing required fields")
		return nil, consts.ErrorTrustScoreInvalidResponse
	}
	if response.Approved && len(response.LoanOptions) == 0 {
		logger.Error(ctx, "Approved trust score response carries no loan options")
		return nil, consts.ErrorTrustScoreInvalidResponse
	}

	logger.Info(ctx, "Trust score calculated requestId=%s score=%v approved=%t options=%d",
		response.RequestID, response.TrustScore, response.Approved, len(response.LoanOptions))
	return &response, nil
}

func makeAPICall(ct context.Context, url string, method string, headers map[string]string, payload io.Reader) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ct, time.Duration(configs.TIMEOUT_IN_SECONDS)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, consts.ErrorTrustScoreGatewayFailed
	}

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	client := &http.Client{}
	if configs.TRUSTSCORE_CA_CERT_REQUIRED {
		rootCA := configs.TRUSTSCORE_CA_CERTIFICATE

		caCertPool := x509.NewCertPool()
		if ok := caCertPool.AppendCertsFromPEM([]byte(rootCA)); !ok {
			logger.Error(ct, "Failed to append trust score CA certificate")
		}

		tlsConfig := &tls.Config{
			RootCAs: caCertPool,
		}
		tr := &http.Transport{
			TLSClientConfig: tlsConfig,
		}
		client = &http.Client{Transport: tr}
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Error(ct, "Error while calling trust score service: %v", err.Error())
		return nil, consts.ErrorTrustScoreGatewayTimeout
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, consts.ErrorTrustScoreGatewayFailed
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			var errResp downstreamModels.ValidationErrorResponse
			if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Detail) > 0 {
				logger.Error(ct, "Trust score service rejected request: %s", errResp.Detail[0].Msg)
				return nil, consts.ErrorTrustScoreGatewayFailed
			}
		}
		logger.Error(ct, fmt.Sprintf("Trust score service error: %s, status code: %d", string(body), resp.StatusCode))
		return nil, consts.ErrorTrustScoreGatewayFailed
	}

	return body, nil
}
