package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokecatalog/src/infra/audit"
	"jokecatalog/src/infra/config"
	"jokecatalog/src/infra/logger"
	"jokecatalog/src/infra/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	t.Run("generated", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc")
		rec := serve(r, req)
		assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc", rec.Body.String())
	})

	t.Run("oversized replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		rec := serve(r, req)
		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func TestGetRequestID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}

func TestActor(t *testing.T) {
	r := gin.New()
	r.Use(Actor())
	r.GET("/", func(c *gin.Context) {
		actor, ok := audit.ActorFrom(c.Request.Context())
		if !ok {
			actor = "<none>"
		}
		c.String(http.StatusOK, actor)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ActorHeader, "  frank ")
	assert.Equal(t, "frank", serve(r, req).Body.String())

	assert.Equal(t, "<none>", serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.POST("/v1/jokes", func(c *gin.Context) { c.Status(http.StatusCreated) })

	rec := serve(r, httptest.NewRequest(http.MethodOptions, "/v1/jokes", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), ActorHeader)
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Recovery(logger.NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &logs)))
	r.GET("/panic", func(*gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)
	assert.Contains(t, rec.Body.String(), `"req-1"`)
	assert.NotContains(t, rec.Body.String(), "kaboom")
	assert.Contains(t, logs.String(), "kaboom")
	assert.Contains(t, logs.String(), `"request_id":"req-1"`)
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	var logs bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logging(logger.NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &logs)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusInternalServerError)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/ok?page=1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/broken", nil))

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "INFO request handled"))
	assert.Contains(t, lines[0], "path=/ok?page=1")
	assert.True(t, strings.HasPrefix(lines[1], "WARN request handled"))
	assert.True(t, strings.HasPrefix(lines[2], "ERROR request handled"))
	assert.Contains(t, lines[2], "errors=")
}

func TestMetrics_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/v1/jokes/:uuid", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	assert.Equal(t, http.StatusTeapot, serve(r, httptest.NewRequest(http.MethodGet, "/v1/jokes/x", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil)).Code)
}

func TestRecovery_PanicIsLoggedAndCounted(t *testing.T) {
	var logs bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &logs)
	r := gin.New()
	r.Use(RequestID(), Logging(log), Metrics(), Recovery(log))
	r.GET("/panic-counted", func(*gin.Context) { panic("kaboom") })

	counter := metrics.HTTPRequests.WithLabelValues("/panic-counted", http.MethodGet, "500")
	before := testutil.ToFloat64(counter)

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/panic-counted", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	var access string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		if strings.Contains(line, "request handled") {
			access = line
		}
	}
	require.NotEmpty(t, access, "no access log line in %q", logs.String())
	assert.True(t, strings.HasPrefix(access, "ERROR request handled"))
	assert.Contains(t, access, "status=500")
	assert.Contains(t, access, "path=/panic-counted")
}
