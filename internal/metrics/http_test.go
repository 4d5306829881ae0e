package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success_RecordsRoutePattern", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
		router.GET("/v1/patients/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})

		for _, id := range []string{"1", "2", "3"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/patients/"+id, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		output := scrape(t, provider)
		assertBizMetricLine(
			t,
			output,
			`test_app_http_requests_total`,
			`method="GET".*path="/v1/patients/:id".*status_code="200"`,
			`3`,
		)
		assert.NotContains(t, output, `path="/v1/patients/1"`)
	})

	t.Run("Success_SkipsProbeRoutes", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app", "/health"))
		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		assert.NotContains(t, scrape(t, provider), `path="/health"`)
	})

	t.Run("Success_UnmatchedRouteIsUnknown", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		assertBizMetricLine(t, scrape(t, provider), `test_app_http_requests_total`, `path="unknown"`, `1`)
	})
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"RoutePattern", "/v1/patients/:id", "/v1/patients/:id"},
		{"EmptyPath", "", "unknown"},
		{"RootPath", "/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}
