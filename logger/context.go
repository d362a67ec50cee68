package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FromGin returns the request-scoped logger, or fallback when the middleware
// did not run.
func FromGin(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(ctxKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}
