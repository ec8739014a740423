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

func CreateBooking(bs *services.BookingService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		created, err := bs.CreateBooking(c.Request.Context(), userID, &booking)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Booking created successfully"))
	}
}

func GetMyBookings(bs *services.BookingService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid page parameter"))
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}

		bookings, pagination, err := bs.ListMyBookings(c.Request.Context(), userID, page, limit)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"bookings":   bookings,
			"pagination": pagination,
		}, ""))
	}
}

func GetBookingByID(bs *services.BookingService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		booking, err := bs.GetBooking(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func CancelBooking(bs *services.BookingService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		booking, err := bs.CancelBooking(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking cancelled successfully"))
	}
}

// UpdateBookingStatus is the admin path; routing guarantees the admin role.
func UpdateBookingStatus(bs *services.BookingService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		updated, err := bs.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Booking status updated successfully"))
	}
}
