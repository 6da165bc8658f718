package middleware

import (
	"net/http"
	"strings"

	"eazywed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenCookie is the cookie the web client stores its session token in.
const TokenCookie = "token"

// tokenFromRequest prefers a bearer header and falls back to the session cookie.
func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// JWTAuthUserMiddleware verifies the user's token and stores the user id in
// the context under utils.UserIDKey.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			zap.L().Debug("Rejected user token", zap.Error(err), zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Insufficient authorization"})
			return
		}

		c.Set(utils.UserIDKey, userID)
		c.Next()
	}
}
