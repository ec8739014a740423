package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
	"github.com/lezit/transports-server/internal/services"
)

func GetServices(cs *services.CatalogService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.ServiceFilter

		if category := c.Query("category"); category != "" {
			filter.Category = &category
		}
		if isActive := c.Query("isActive"); isActive != "" {
			active, err := strconv.ParseBool(isActive)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid isActive parameter"))
				return
			}
			filter.IsActive = &active
		}

		result, err := cs.ListServices(c.Request.Context(), filter)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(result, ""))
	}
}

func GetServiceByID(cs *services.CatalogService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		service, err := cs.GetService(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(service, ""))
	}
}

func CreateService(cs *services.CatalogService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		created, err := cs.CreateService(c.Request.Context(), input)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Service created successfully"))
	}
}

func UpdateService(cs *services.CatalogService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		updated, err := cs.UpdateService(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Service updated successfully"))
	}
}

func DeleteService(cs *services.CatalogService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Service deleted successfully"))
	}
}
