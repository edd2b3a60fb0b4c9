package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseDaysParam parses a `days` query parameter with a fallback default.
// Malformed or missing values fall back to the default rather than erroring;
// the result is clamped to [1, maxDays].
func ParseDaysParam(c *gin.Context, def, maxDays int) int {
	raw := c.Query("days")
	if raw == "" {
		return def
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	if days < 1 {
		return def
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

// ParseIDParam parses a numeric path parameter. On failure it writes a 400
// response and returns false; the caller only needs to return.
func ParseIDParam(c *gin.Context, paramName string) (uint, bool) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+paramName+" parameter")
		return 0, false
	}
	return uint(id), true
}
