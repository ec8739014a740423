package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
	"github.com/lezit/transports-server/internal/services"
)

func GetAdminStats(as *services.AdminService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := as.GetStats(c.Request.Context())
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}

func GetAdminUsers(as *services.AdminService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := as.ListUsers(c.Request.Context())
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(users, ""))
	}
}

func GetAdminBookings(as *services.AdminService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := as.ListBookings(c.Request.Context())
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func UpdateUserStatus(as *services.AdminService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := helpers.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var input struct {
			IsActive *bool `json:"isActive"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.IsActive == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("isActive is required"))
			return
		}

		user, err := as.SetUserActive(c.Request.Context(), c.Param("id"), claims.UserID, *input.IsActive)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, "User status updated successfully"))
	}
}

func UpdateServiceStatus(cs *services.CatalogService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			IsActive *bool `json:"isActive"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.IsActive == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("isActive is required"))
			return
		}

		service, err := cs.SetServiceActive(c.Request.Context(), c.Param("id"), *input.IsActive)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(service, "Service status updated successfully"))
	}
}
