package utils

import (
	"fmt"
	"net/http"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

func ColorText(text, color string) string {
	return color + text + Reset
}

// ColorStatus renders an HTTP status code with a severity color.
func ColorStatus(statusCode int) string {
	text := fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))

	switch {
	case statusCode >= http.StatusInternalServerError:
		return ColorText(text, Red)
	case statusCode >= http.StatusBadRequest:
		return ColorText(text, Yellow)
	default:
		return ColorText(text, Green)
	}
}
