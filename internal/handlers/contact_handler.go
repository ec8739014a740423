package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
	"github.com/lezit/transports-server/internal/services"
)

func SubmitContactForm(cs *services.ContactService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		if err := cs.SubmitContactForm(input); err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Contact form submitted successfully. We will get back to you soon!"))
	}
}

func SubmitSupportRequest(cs *services.ContactService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.SupportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		if err := cs.SubmitSupportRequest(input); err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Support request submitted successfully. We will address your issue soon!"))
	}
}
