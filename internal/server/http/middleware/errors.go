package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	"github.com/polkiloo/userhub/internal/server/http/dto"
)

// ErrorHandler renders the last error attached to the context as
// {"message": ...} with the status of its kind, and logs the internal cause.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		classified := domainErrors.Classify(c.Errors.Last().Err)
		status := classified.Status()

		attrs := []any{
			slog.String("kind", string(classified.Kind)),
			slog.Int("status", status),
			slog.String("message", classified.Message),
			slog.String("path", c.Request.URL.Path),
		}
		if classified.Err != nil {
			attrs = append(attrs, slog.String("error", classified.Err.Error()))
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", attrs...)
		} else {
			logger.Warn("request rejected", attrs...)
		}

		c.JSON(status, dto.NewErrorResponse(classified))
	}
}
