package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookFlightRequest struct {
	FlightNumber string `json:"flight_number"`
	Username     string `json:"username"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterPublic(router gin.IRouter) {
	router.POST("/flights/book", h.book)
	router.GET("/user/bookings", h.myBookings)
}

func (h *BookingHandler) RegisterAdmin(router gin.IRouter) {
	router.GET("/bookings", h.allBookings)
}

// book replies with plain text like the original: a sold-out flight is a
// 200 "No seats available", not an error status.
func (h *BookingHandler) book(c *gin.Context) {
	var req bookFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.Book(c.Request.Context(), req.FlightNumber, req.Username); err != nil {
		switch {
		case errors.Is(err, repository.ErrFlightNotFound):
			c.String(http.StatusNotFound, "Flight not found")
		case errors.Is(err, repository.ErrUserNotFound):
			c.String(http.StatusNotFound, "User not found")
		case errors.Is(err, repository.ErrNoSeats):
			c.String(http.StatusOK, "No seats available")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.String(http.StatusOK, "Ticket booked successfully")
}

func (h *BookingHandler) myBookings(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username parameter."})
		return
	}

	views, err := h.service.MyBookings(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(views) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No bookings found for this user."})
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) allBookings(c *gin.Context) {
	views, err := h.service.AllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}
