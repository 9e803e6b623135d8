package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into a 500 INTERNAL_ERROR envelope and logs them with
// the request id. Panics caused by a client that went away are logged at warn
// level and get no response body.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			fields := []interface{}{
				"error", rec,
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			}

			if brokenConnection(rec) {
				logger.Warnw("client connection lost", fields...)
				_ = c.Error(errors.New("client connection lost"))
				c.Abort()
				return
			}

			logger.Errorw("panic recovered", append(fields, "stack", string(debug.Stack()))...)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "internal server error",
				},
			})
		}()

		c.Next()
	}
}

func brokenConnection(rec interface{}) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var sysErr *os.SyscallError
		return errors.As(opErr, &sysErr)
	}
	return false
}
