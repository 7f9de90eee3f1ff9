package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jawwad-masteee/handlix/utils"
	"go.uber.org/zap"
)

// CachedResponse is what the response cache stores per request URI.
type CachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// ResponseCache stores rendered responses. Get reports a miss with
// ok == false and a nil error.
type ResponseCache interface {
	Get(ctx context.Context, key string) (resp CachedResponse, ok bool, err error)
	Set(ctx context.Context, key string, resp CachedResponse, ttl time.Duration) error
}

// RedisResponseCache keeps responses in Redis as JSON.
type RedisResponseCache struct {
	client *redis.Client
}

func NewRedisResponseCache(client *redis.Client) *RedisResponseCache {
	return &RedisResponseCache{client: client}
}

func responseKey(key string) string {
	return utils.ResponseCachePrefix + key
}

func (r *RedisResponseCache) Get(ctx context.Context, key string) (CachedResponse, bool, error) {
	raw, err := r.client.Get(ctx, responseKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return CachedResponse{}, false, nil
	}
	if err != nil {
		return CachedResponse{}, false, err
	}
	var resp CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CachedResponse{}, false, err
	}
	return resp, true, nil
}

func (r *RedisResponseCache) Set(ctx context.Context, key string, resp CachedResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, responseKey(key), data, ttl).Err()
}

// bodyRecorder tees the response body so it can be cached after the
// handler chain returns.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheResponses serves GET requests from cache, keyed by the full request
// URI, and stores 200 responses for ttl. Cache errors are logged and the
// request proceeds uncached.
func CacheResponses(cache ResponseCache, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = utils.ResponseCacheTTL
	}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		logger := requestLogger(c)
		key := c.Request.URL.RequestURI()
		ctx := c.Request.Context()

		cached, ok, err := cache.Get(ctx, key)
		if err != nil {
			logger.Warn("response cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			c.Header("X-Cache", "HIT")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Header("X-Cache", "MISS")
		c.Next()

		if rec.Status() != http.StatusOK {
			return
		}
		resp := CachedResponse{
			Status:      rec.Status(),
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		}
		if err := cache.Set(ctx, key, resp, ttl); err != nil {
			logger.Warn("response cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}
