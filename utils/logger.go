package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetAPIHitter returns a printable identity for the authenticated caller,
// falling back to the client IP for anonymous endpoints.
func GetAPIHitter(c *gin.Context) string {
	if userUUID, exists := c.Get("userUUID"); exists {
		return fmt.Sprintf("%v", userUUID)
	}
	return c.ClientIP()
}

// PrintLogInfo writes a per-handler outcome line.
func PrintLogInfo(actor *string, statusCode int, operation string, err *error) {
	var logColor string

	switch {
	case statusCode >= http.StatusInternalServerError:
		logColor = Red
	case statusCode >= http.StatusBadRequest:
		logColor = Yellow
	default:
		logColor = Green
	}

	who := "Unknown"
	if actor != nil {
		who = *actor
	}

	event := log.Info()
	line := fmt.Sprintf("Actor: %s | Status: %s | Operation: %s", who, ColorStatus(statusCode), operation)
	if err != nil && *err != nil {
		event = log.Warn().Err(*err)
		line += fmt.Sprintf(" | Error: %v", *err)
	}

	event.Int("status", statusCode).Str("operation", operation).Str("actor", who).Msg("request handled")
	fmt.Printf("%s%s%s\n", logColor, line, Reset)
}
