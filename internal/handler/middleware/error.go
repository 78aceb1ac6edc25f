package middleware

import (
	"log/slog"
	"net/http"

	"rental-front/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const fallbackMessage = "Något gick fel. Försök igen."

// ErrorHandler drains the gin error stack after the handler chain ran and
// renders the most recent public error. Handlers push httperr.Response
// values; anything else falls through to a generic failure so no raw
// error text ever reaches a visitor.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		// Newest error wins; older ones are usually its causes.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		slog.Error("request ended without a response",
			"request_id", GetRequestID(c), "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": fallbackMessage}})
	}
}

// CustomRecovery turns panics into the same JSON failure shape the error
// handler produces, so clients never see a connection reset.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic",
					"error", r, "request_id", GetRequestID(c), "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = fallbackMessage

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
