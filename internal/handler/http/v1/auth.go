package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// apiKeyFromRequest достаёт ключ из X-API-Key или из Authorization: Bearer
func apiKeyFromRequest(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func knownAPIKey(keys []string, candidate string) bool {
	for _, key := range keys {
		if key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(candidate)) == 1 {
			return true
		}
	}
	return false
}

// APIKeyAuthMiddleware закрывает операторские маршруты (смена статуса, переназначение).
// Приём сообщений о происшествиях остаётся открытым.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := log.WithField("path", c.FullPath())

		apiKey := apiKeyFromRequest(c)
		if apiKey == "" {
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !knownAPIKey(cfg.APIKeys, apiKey) {
			entry.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}
