package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
	"github.com/lezit/transports-server/internal/services"
)

// authPayload pairs the public user fields with the issued bearer token.
type authPayload struct {
	User  *models.PublicUser `json:"user"`
	Token string             `json:"token"`
}

func Register(as *services.AuthService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		user, token, err := as.Register(c.Request.Context(), input)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(authPayload{User: user, Token: token}, "User registered successfully"))
	}
}

func Login(as *services.AuthService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		user, token, err := as.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(authPayload{User: user, Token: token}, "Login successful"))
	}
}
