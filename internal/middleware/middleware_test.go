package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"repo-gateway/internal/domain/repo"
	"repo-gateway/internal/logging"
	"repo-gateway/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

// recordingLogger keeps every record for assertions
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.add("debug", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.add("info", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.add("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.add("error", msg, args) }
func (l *recordingLogger) With(...any) logging.Logger    { return l }

func (l *recordingLogger) value(entry logEntry, key string) any {
	for i := 0; i+1 < len(entry.args); i += 2 {
		if entry.args[i] == key {
			return entry.args[i+1]
		}
	}
	return nil
}

type httpObservation struct {
	method string
	route  string
	status int
}

type recordingCollector struct {
	metrics.NopCollector
	observed []httpObservation
}

func (r *recordingCollector) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	r.observed = append(r.observed, httpObservation{method: method, route: route, status: status})
}

func serve(router *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		for _, vv := range v {
			req.Header.Add(k, vv)
		}
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID_Generated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := serve(router, http.MethodGet, "/ping", nil)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	assert.Len(t, seen, 36)
}

func TestRequestID_Honored(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, http.MethodGet, "/ping", http.Header{RequestIDHeader: {"abc-123"}})

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAccessLog(t *testing.T) {
	logger := &recordingLogger{}
	router := gin.New()
	router.Use(RequestID(), AccessLog(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(router, http.MethodGet, "/ok?page=1", nil)
	serve(router, http.MethodGet, "/missing", nil)
	serve(router, http.MethodGet, "/broken", nil)

	require.Len(t, logger.entries, 3)
	assert.Equal(t, "info", logger.entries[0].level)
	assert.Equal(t, "/ok?page=1", logger.value(logger.entries[0], "path"))
	assert.Equal(t, http.StatusOK, logger.value(logger.entries[0], "status"))
	assert.NotEmpty(t, logger.value(logger.entries[0], "request_id"))
	assert.Equal(t, "warn", logger.entries[1].level)
	assert.Equal(t, "error", logger.entries[2].level)
}

func TestFaultHandler_UnmappedError(t *testing.T) {
	logger := &recordingLogger{}
	router := gin.New()
	router.Use(FaultHandler(logger))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(repo.ErrUnknownUpstreamFailure(502, errors.New("bad gateway")))
	})

	w := serve(router, http.MethodGet, "/fail", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	require.Len(t, logger.entries, 1)
	assert.Equal(t, string(repo.KindUnknownUpstreamFailure), logger.value(logger.entries[0], "kind"))
	assert.Equal(t, 502, logger.value(logger.entries[0], "upstream_status"))
}

func TestFaultHandler_PlainError(t *testing.T) {
	logger := &recordingLogger{}
	router := gin.New()
	router.Use(FaultHandler(logger))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	w := serve(router, http.MethodGet, "/fail", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, logger.entries, 1)
	assert.Nil(t, logger.value(logger.entries[0], "kind"))
}

func TestFaultHandler_Panic(t *testing.T) {
	logger := &recordingLogger{}
	router := gin.New()
	router.Use(FaultHandler(logger))
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := serve(router, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	require.Len(t, logger.entries, 1)
	assert.Equal(t, "panic recovered", logger.entries[0].msg)
}

func TestFaultHandler_AlreadyWritten(t *testing.T) {
	logger := &recordingLogger{}
	router := gin.New()
	router.Use(FaultHandler(logger))
	router.GET("/partial", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"message": "short and stout"})
		_ = c.Error(errors.New("after write"))
	})

	w := serve(router, http.MethodGet, "/partial", nil)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Len(t, logger.entries, 1)
}

func TestFaultHandler_NoError(t *testing.T) {
	logger := &recordingLogger{}
	router := gin.New()
	router.Use(FaultHandler(logger))
	router.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	w := serve(router, http.MethodGet, "/ok", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, logger.entries)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	collector := &recordingCollector{}
	router := gin.New()
	router.Use(Metrics(collector))
	router.GET("/users/:name", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, http.MethodGet, "/users/octocat", nil)
	serve(router, http.MethodGet, "/nowhere", nil)

	require.Len(t, collector.observed, 2)
	assert.Equal(t, httpObservation{method: "GET", route: "/users/:name", status: 200}, collector.observed[0])
	assert.Equal(t, httpObservation{method: "GET", route: unmatchedRoute, status: 404}, collector.observed[1])
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantHeader string
	}{
		{"wildcard", []string{"*"}, "http://example.com", "*"},
		{"listed origin", []string{"http://example.com"}, "http://example.com", "http://example.com"},
		{"unlisted origin", []string{"http://example.com"}, "http://evil.test", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.allowed))
			router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := serve(router, http.MethodGet, "/ping", http.Header{"Origin": {tt.origin}})

			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
