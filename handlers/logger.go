package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/utils"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped Zap logger from the Gin context.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.ContextLogger(c)
}
