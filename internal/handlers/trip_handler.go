package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/service"
)

// tripView decorates a trip with the display label for its status, so the
// dashboards never need their own status-to-text mapping.
type tripView struct {
	models.Trip
	StatusLabel string `json:"statusLabel"`
}

func viewOf(t models.Trip) tripView {
	return tripView{Trip: t, StatusLabel: t.Status.Label()}
}

func viewsOf(trips []models.Trip) []tripView {
	views := make([]tripView, 0, len(trips))
	for _, t := range trips {
		views = append(views, viewOf(t))
	}
	return views
}

// GetTrips lists every trip, most recent first (admin dashboard).
func (h *Handler) GetTrips(c *gin.Context) {
	trips, err := h.Repo.Trips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewsOf(trips))
}

// GetMyTrips lists the acting driver's trips, most recent first.
func (h *Handler) GetMyTrips(c *gin.Context) {
	userID, _ := c.Get("userID")
	trips, err := h.Repo.TripsByDriver(c.Request.Context(), userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewsOf(trips))
}

func (h *Handler) CreateTrip(c *gin.Context) {
	var req service.CreateTripInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trip, err := h.Trips.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(trip))
}

// UpdateTripStatus advances the trip lifecycle. Only an admin or the
// assigned driver may move a trip.
func (h *Handler) UpdateTripStatus(c *gin.Context) {
	var req struct {
		Status models.TripStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tripID := c.Param("id")
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")
	if userRole != models.RoleAdmin {
		trip, err := h.Repo.TripByID(c.Request.Context(), tripID)
		if err != nil {
			respondError(c, err)
			return
		}
		if trip.DriverID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
			return
		}
	}

	trip, err := h.Trips.Transition(c.Request.Context(), tripID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(trip))
}

// DeleteTrip removes a trip in any state (admin override).
func (h *Handler) DeleteTrip(c *gin.Context) {
	if err := h.Trips.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}
