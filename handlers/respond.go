package handlers

import (
	"net/http"

	"eazywed/services/dashboard"
	"eazywed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps a domain error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case dashboard.CodeNotFound:
		return http.StatusNotFound
	case dashboard.CodeForbidden:
		return http.StatusForbidden
	case dashboard.CodeConflict:
		return http.StatusConflict
	case dashboard.CodeInvalid:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError writes err as a {"message": ...} body. Errors without a
// domain code are logged and reported with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	if de, ok := dashboard.AsError(err); ok {
		getLogger(c).Warn(de.Message, zap.String("code", de.Code), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(statusFor(de.Code), utils.ErrorResponse{Message: de.Message})
		return
	}
	getLogger(c).Error(fallback, zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: fallback})
}

// currentUser returns the authenticated user id or aborts with 401.
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString(utils.UserIDKey)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
		return "", false
	}
	return userID, true
}
