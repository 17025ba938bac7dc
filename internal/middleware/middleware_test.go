package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annel0/blocksandbox/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPrometheusMiddlewareReuse(t *testing.T) {
	a := NewPrometheusMiddleware("mw_test")
	b := NewPrometheusMiddleware("mw_test")

	assert.Same(t, a.reqDuration, b.reqDuration, "повторная регистрация отдаёт тот же коллектор")
	assert.Same(t, a.reqErrors, b.reqErrors)
}

func TestPrometheusMiddlewareCountsErrors(t *testing.T) {
	pm := NewPrometheusMiddleware("mw_errors")
	r := gin.New()
	r.Use(pm.Handler())
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusConflict) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	pm.RegisterMetricsEndpoint(r)

	for _, path := range []string{"/fail", "/fail", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.reqErrors.WithLabelValues("GET", "/fail", "409")))
	assert.Equal(t, 0.0, testutil.ToFloat64(pm.reqErrors.WithLabelValues("GET", "/ok", "200")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mw_errors_http_request_errors_total")
}

func TestRequestLoggerTraceID(t *testing.T) {
	r := gin.New()
	r.Use(NewRequestLogger(logging.GetAPILogger()).Handler())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(TraceIDKey)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, seen, "без OTel спана используется uuid")
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get("X-Trace-Id"))
}
