package httputil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ParsePagination safely parses and validates offset and limit query parameters.
// It uses default values of 0 for offset and 50 for limit.
// The limit cannot exceed 100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limitStr := c.DefaultQuery("limit", "50")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and 100")
	}

	return offset, limit, nil
}

// ParseTimeRange parses the optional RFC3339 query parameters fromKey and toKey.
// Values are converted to UTC; from must not be after to when both are present.
func ParseTimeRange(c *gin.Context, fromKey, toKey string) (from, to *time.Time, err error) {
	from, err = parseRFC3339Query(c, fromKey)
	if err != nil {
		return nil, nil, err
	}

	to, err = parseRFC3339Query(c, toKey)
	if err != nil {
		return nil, nil, err
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%s must be before or equal to %s", fromKey, toKey)
	}

	return from, to, nil
}

func parseRFC3339Query(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format: must be RFC3339 (e.g., 2026-02-01T00:00:00Z)", key)
	}

	utc := parsed.UTC()
	return &utc, nil
}
