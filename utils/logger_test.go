package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	cases := []struct {
		name    string
		env     string
		level   string
		debugOn bool
		infoOn  bool
	}{
		{name: "production", env: "production", infoOn: true},
		{name: "development", env: "development", debugOn: true, infoOn: true},
		{name: "level override", env: "development", level: "warn"},
		{name: "bad level keeps default", env: "production", level: "loud", infoOn: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := NewLogger(tc.env, tc.level)
			require.NoError(t, err)
			assert.Equal(t, tc.debugOn, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tc.infoOn, logger.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
		})
	}
}

func TestContextLogger(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, GetLogger(), ContextLogger(c))

	scoped := zap.NewNop().With(zap.String("request_id", "abc"))
	c.Set(LoggerKey, scoped)
	assert.Same(t, scoped, ContextLogger(c))

	c.Set(LoggerKey, "not a logger")
	assert.Same(t, GetLogger(), ContextLogger(c))
}
