package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP keys rate limits and log lines. Forwarding headers are only
// trusted when they hold a parseable address.
func getClientIP(c *gin.Context) string {
	for _, candidate := range strings.Split(c.GetHeader("X-Forwarded-For"), ",") {
		if ip := validIP(candidate); ip != "" {
			return ip
		}
	}
	if ip := validIP(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func validIP(raw string) string {
	raw = strings.TrimSpace(raw)
	if net.ParseIP(raw) == nil {
		return ""
	}
	return raw
}
