package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/mediport/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		expectedOffset int
		expectedLimit  int
		expectError    bool
		errorMsg       string
	}{
		{
			name:           "default values",
			url:            "/",
			expectedOffset: 0,
			expectedLimit:  50,
			expectError:    false,
		},
		{
			name:           "valid custom values",
			url:            "/?offset=10&limit=20",
			expectedOffset: 10,
			expectedLimit:  20,
			expectError:    false,
		},
		{
			name:           "max limit",
			url:            "/?limit=100",
			expectedOffset: 0,
			expectedLimit:  100,
			expectError:    false,
		},
		{
			name:        "offset negative",
			url:         "/?offset=-1",
			expectError: true,
			errorMsg:    "invalid offset parameter: must be a non-negative integer",
		},
		{
			name:        "offset not an integer",
			url:         "/?offset=abc",
			expectError: true,
			errorMsg:    "invalid offset parameter: must be a non-negative integer",
		},
		{
			name:        "limit zero",
			url:         "/?limit=0",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
		{
			name:        "limit exceeds max",
			url:         "/?limit=101",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
		{
			name:        "limit not an integer",
			url:         "/?limit=xyz",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			c.Request = req

			offset, limit, err := httputil.ParsePagination(c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				// Check that values are 0 on error
				assert.Equal(t, 0, offset)
				assert.Equal(t, 0, limit)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOffset, offset)
				assert.Equal(t, tt.expectedLimit, limit)
			}
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		url         string
		expectFrom  bool
		expectTo    bool
		expectError string
	}{
		{name: "no bounds", url: "/"},
		{name: "from only", url: "/?from=2026-02-01T00:00:00Z", expectFrom: true},
		{name: "both bounds", url: "/?from=2026-02-01T00:00:00Z&to=2026-02-14T23:59:59Z", expectFrom: true, expectTo: true},
		{name: "invalid from", url: "/?from=yesterday", expectError: "invalid from format"},
		{name: "invalid to", url: "/?to=2026-02-30", expectError: "invalid to format"},
		{
			name:        "from after to",
			url:         "/?from=2026-02-14T00:00:00Z&to=2026-02-01T00:00:00Z",
			expectError: "from must be before or equal to to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			from, to, err := httputil.ParseTimeRange(c, "from", "to")

			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectFrom, from != nil)
			assert.Equal(t, tt.expectTo, to != nil)
			if from != nil {
				assert.Equal(t, "UTC", from.Location().String())
			}
		})
	}
}
