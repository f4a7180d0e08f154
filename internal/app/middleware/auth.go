package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
)

const BearerTokenKey contextKey = "bearerToken"

// ExtractBearerToken pulls the Authorization bearer credential off the request
// and keeps it for the downstream scoring call. The credential itself is
// opaque here; validating it belongs to the auth collaborator in front of this
// service. When AUTH_REQUIRED is set a missing credential is rejected.
func ExtractBearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerFromHeader(c.GetHeader("Authorization"))
		if token == "" && configs.AUTH_REQUIRED {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": consts.ErrorMissingBearerToken.Error(),
				"code":  consts.ErrorMissingBearerToken.ErrorCode(),
			})
			return
		}
		if token != "" {
			c.Set(string(BearerTokenKey), token)
		}
		c.Next()
	}
}

// BearerToken returns the credential captured by ExtractBearerToken, or "".
func BearerToken(c *gin.Context) string {
	return c.GetString(string(BearerTokenKey))
}

func bearerFromHeader(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
