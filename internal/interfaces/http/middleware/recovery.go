package middleware

import (
	"errors"
	"net"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/shared/constants"
	apperrors "github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

// Recovery turns a handler panic into a 500 envelope. The panic value and
// stack go to the log only; request headers are not recorded since they carry
// bearer tokens.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		reqLog := logger.FromContext(c.Request.Context(), log).With(
			"method", c.Request.Method,
			"route", c.FullPath(),
		)

		if clientGone(recovered) {
			reqLog.Warnw("client disconnected mid-response", "error", recovered)
			c.Abort()
			return
		}

		reqLog.Errorw("panic recovered",
			"panic", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponseWithError(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
		c.Abort()
	})
}

func clientGone(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}
	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
