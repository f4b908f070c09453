package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "finagent/internal/errors"
	"finagent/internal/logger"
)

// ErrorHandler writes the last error attached with c.Error as a JSON error
// response, unless the handler already wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}

// WriteError responds with the AppError found in err. Causes are logged with
// the request ID and never sent to the client.
func WriteError(c *gin.Context, err error) {
	appErr := apperrors.Resolve(err)
	if appErr.Internal != nil {
		logger.Named("http").Errorw("request failed",
			"code", appErr.Code,
			"error", appErr.Internal.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", RequestID(c),
		)
	}
	c.JSON(appErr.StatusCode, appErr.Envelope())
}
