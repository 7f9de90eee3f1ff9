package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jawwad-masteee/handlix/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

func serve(r *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	hdr := map[string]string{"X-Forwarded-For": "203.0.113.7"}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", hdr).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", hdr).Code)

	w := serve(r, http.MethodGet, "/", hdr)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"Rate limit exceeded. Try again later."}`, w.Body.String())

	other := map[string]string{"X-Forwarded-For": "203.0.113.8"}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", other).Code)
}

func TestRateLimiterStoreEvictsIdleIPs(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	store := newRateLimiterStore(10)
	store.now = func() time.Time { return clock }
	store.lastSweep = start

	a := store.getLimiter("198.51.100.1")
	assert.Same(t, a, store.getLimiter("198.51.100.1"))

	clock = start.Add(2 * time.Minute)
	b := store.getLimiter("198.51.100.2")
	assert.Equal(t, 2, store.size())

	clock = start.Add(limiterIdleTTL + time.Minute)
	store.getLimiter("198.51.100.3")
	assert.Equal(t, 2, store.size(), "only the idle IP is dropped")
	assert.Same(t, b, store.getLimiter("198.51.100.2"))
	assert.NotSame(t, a, store.getLimiter("198.51.100.1"))
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": " 198.51.100.1 , 10.0.0.1"}, "198.51.100.1"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
		{"garbage header", map[string]string{"X-Forwarded-For": "unknown"}, "192.0.2.1"},
		{"remote addr", nil, "192.0.2.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))

	var seen *zap.Logger
	r.GET("/api/faqs", func(c *gin.Context) {
		seen = requestLogger(c)
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/api/faqs", nil)
	id := w.Header().Get(utils.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotNil(t, seen)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, id, fields["requestID"])
	assert.Equal(t, "/api/faqs", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])

	given := uuid.New().String()
	w = serve(r, http.MethodGet, "/api/faqs", map[string]string{utils.RequestIDHeader: given})
	assert.Equal(t, given, w.Header().Get(utils.RequestIDHeader))
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]CachedResponse
	failGet bool
	failSet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]CachedResponse)}
}

func (m *memoryCache) Get(_ context.Context, key string) (CachedResponse, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return CachedResponse{}, false, errors.New("connection refused")
	}
	resp, ok := m.entries[key]
	return resp, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, resp CachedResponse, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("connection refused")
	}
	m.entries[key] = resp
	return nil
}

func cachedRouter(cache ResponseCache, calls *int) *gin.Engine {
	r := gin.New()
	r.Use(CacheResponses(cache, time.Minute))
	r.GET("/api/pricing", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"category": c.Query("category")})
	})
	r.GET("/api/pricing/:id", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})
	r.POST("/api/contact", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"url": "x"})
	})
	return r
}

func TestCacheResponses(t *testing.T) {
	cache := newMemoryCache()
	calls := 0
	r := cachedRouter(cache, &calls)

	w := serve(r, http.MethodGet, "/api/pricing?category=pet", nil)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"category":"pet"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/api/pricing?category=pet", nil)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"category":"pet"}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, calls)

	serve(r, http.MethodGet, "/api/pricing?category=plumbing", nil)
	assert.Equal(t, 2, calls, "query string is part of the key")

	serve(r, http.MethodGet, "/api/pricing/nope", nil)
	serve(r, http.MethodGet, "/api/pricing/nope", nil)
	assert.Equal(t, 4, calls, "errors are not cached")

	serve(r, http.MethodPost, "/api/contact", nil)
	serve(r, http.MethodPost, "/api/contact", nil)
	assert.Equal(t, 6, calls)
}

func TestCacheResponsesBypassesFailures(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet, cache.failSet = true, true
	calls := 0
	r := cachedRouter(cache, &calls)

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodGet, "/api/pricing", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, calls)
}
