package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

type contextKey string

const LogDetailsKey contextKey = "logDetails"
const SessionIDKey contextKey = "sessionID"

func extractHeaders(headers map[string][]string) map[string]interface{} {
	result := make(map[string]interface{})
	for key, values := range headers {
		result[key] = values[0]
	}
	return maskSensitiveData(result, consts.SensitiveKeys)
}

// AttachRequestDetails stamps every request with a request id and a session id.
// The session id comes from the session cookie when present and is minted (and
// set on the response) otherwise, so every caller has a session before any
// record is read or written.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now().UTC()

		sessionID := ensureSessionID(c)

		details := models.RequestDetails{
			RequestID:     uuid.New().String(),
			SessionID:     sessionID,
			IP:            c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
			HTTPMethod:    c.Request.Method,
			Path:          c.Request.URL.String(),
			OperationName: extractFirstTwoSegments(c.HandlerName()),
			RequestTime:   requestTime.Format(time.RFC3339Nano),
			RequestParams: map[string]interface{}{
				"headers": extractHeaders(c.Request.Header),
				"query":   c.Request.URL.Query(),
			},
		}

		ctx := context.WithValue(c.Request.Context(), LogDetailsKey, details)
		ctx = context.WithValue(ctx, SessionIDKey, sessionID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()

		details.Status = c.Writer.Status()
		details.ResponseTime = time.Now().UTC().Format(time.RFC3339Nano)
		details.ResponseParams = map[string]interface{}{
			"headers": extractHeaders(c.Writer.Header()),
		}

		logMessage, err := json.Marshal(details)
		if err != nil {
			log.Printf("Error encoding log message to JSON: %v", err)
			return
		}
		fmt.Println(string(logMessage))
	}
}

// SessionID returns the session id attached by AttachRequestDetails.
func SessionID(c *gin.Context) string {
	if id, ok := c.Request.Context().Value(SessionIDKey).(string); ok {
		return id
	}
	return ""
}

func ensureSessionID(c *gin.Context) string {
	name := configs.SESSION_COOKIE_NAME
	if name == "" {
		name = "momomore_session"
	}
	if cookie, err := c.Cookie(name); err == nil && cookie != "" {
		return cookie
	}
	sessionID := uuid.New().String()
	maxAge := configs.SESSION_TTL_MINUTES * 60
	if maxAge <= 0 {
		maxAge = 1800
	}
	c.SetCookie(name, sessionID, maxAge, "/", "", false, true)
	return sessionID
}

func maskSensitiveData(data map[string]interface{}, keysToMask []string) map[string]interface{} {
	maskedData := make(map[string]interface{})
	for key, value := range data {
		if contains(keysToMask, key) {
			maskedData[key] = "*****"
		} else {
			if value != nil && reflect.TypeOf(value).Kind() == reflect.Map {
				if nestedMap, ok := value.(map[string]interface{}); ok {
					maskedData[key] = maskSensitiveData(nestedMap, keysToMask)
				} else {
					maskedData[key] = value
				}
			} else {
				maskedData[key] = value
			}
		}
	}
	return maskedData
}

func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

func extractFirstTwoSegments(handlerName string) string {
	segments := strings.Split(handlerName, "/")
	if len(segments) > 2 {
		return strings.Join(segments[:2], "/")
	}
	return handlerName
}
