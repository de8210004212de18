package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MTahaFarrukh/PortBuilder/pkg/apperror"
	"github.com/MTahaFarrukh/PortBuilder/pkg/auth"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

const (
	GinContextKeyUserID = "userID"
)

// AuthMiddleware resolves the identity collaborator: it only extracts the
// user id the store keys persistence with.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		identity := jwtSvc.Resolve(tokenString)
		if !identity.IsAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUserID, identity.UserID)

		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// ErrorMiddleware converts errors attached to the gin context into JSON
// responses with the right status code.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			log.Warn("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(appErr))
			c.JSON(apperror.ToHTTPStatus(appErr), appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
