package helpers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/lezit/transports-server/internal/models"
)

// Fail renders err through the uniform envelope. Validation and state errors
// keep their message; dependency failures are logged and collapsed to a
// generic 500 so internals never leak to the client.
func Fail(c *gin.Context, logger *slog.Logger, err error) {
	appErr := models.AsAppError(err)
	if appErr.Kind == models.KindDependency {
		requestID, _ := c.Get("request_id")
		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", appErr.Error(),
		)
		c.JSON(appErr.StatusCode(), models.ErrorResponse("internal server error"))
		return
	}
	c.JSON(appErr.StatusCode(), models.ErrorResponse(appErr.Message))
}
