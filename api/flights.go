package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

// flightInfo is the search projection: seat_count carries the remaining
// seats, matching the original wire shape.
type flightInfo struct {
	FlightNumber string `json:"flight_number"`
	SeatCount    int    `json:"seat_count"`
}

type removeFlightRequest struct {
	FlightNumber string `json:"flight_number"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) RegisterPublic(router gin.IRouter) {
	router.GET("/flights/search", h.search)
}

func (h *FlightHandler) RegisterAdmin(router gin.IRouter) {
	router.POST("/flights/add", h.add)
	router.POST("/flights/remove", h.remove)
}

func (h *FlightHandler) search(c *gin.Context) {
	departureTime := c.Query("departure_time")

	found, err := h.service.Search(c.Request.Context(), departureTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(found) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No flights found for the given departure time."})
		return
	}

	infos := make([]flightInfo, 0, len(found))
	for _, f := range found {
		infos = append(infos, flightInfo{FlightNumber: f.FlightNumber, SeatCount: f.AvailableSeats})
	}
	c.JSON(http.StatusOK, gin.H{"flights": infos})
}

func (h *FlightHandler) add(c *gin.Context) {
	var req flights.CreateFlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, flights.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data. Please provide flight_number, departure_time, and seat_count."})
		case errors.Is(err, repository.ErrDuplicateFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "Flight with the same number already exists."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("admin %d added flight %s", AdminID(c), req.FlightNumber)
	c.JSON(http.StatusCreated, gin.H{"message": "Flight added successfully"})
}

func (h *FlightHandler) remove(c *gin.Context) {
	var req removeFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Remove(c.Request.Context(), req.FlightNumber); err != nil {
		switch {
		case errors.Is(err, flights.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data. Please provide flight_number."})
		case errors.Is(err, repository.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("admin %d removed flight %s", AdminID(c), req.FlightNumber)
	c.JSON(http.StatusOK, gin.H{"message": "Flight removed successfully"})
}
