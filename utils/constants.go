// File: utils/constants.go
package utils

import "time"

// LoggerKey is the gin context key holding the request-scoped zap logger.
const LoggerKey = "logger"

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// ResponseCachePrefix is the prefix used for Redis response cache keys.
const ResponseCachePrefix = "handlix:resp:"

// ResponseCacheTTL is the default time-to-live for cached responses.
const ResponseCacheTTL = 10 * time.Minute

// HealthCheckInterval is how often the cache connection is pinged.
const HealthCheckInterval = 60 * time.Second
