package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
)

func (h *Handler) GetVehicles(c *gin.Context) {
	vehicles, err := h.Repo.Vehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GetAvailableVehicles lists the vehicles that can be assigned to a new trip.
func (h *Handler) GetAvailableVehicles(c *gin.Context) {
	vehicles, err := h.Repo.AvailableVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if vehicles == nil {
		vehicles = make([]models.Vehicle, 0)
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req struct {
		Plate     string `json:"plate" binding:"required"`
		Model     string `json:"model" binding:"required"`
		Brand     string `json:"brand" binding:"required"`
		Year      int    `json:"year" binding:"required"`
		Available *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	created, err := h.Repo.CreateVehicle(c.Request.Context(), models.Vehicle{
		Plate:     req.Plate,
		Model:     req.Model,
		Brand:     req.Brand,
		Year:      req.Year,
		Available: available,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	var req struct {
		Plate     *string `json:"plate,omitempty"`
		Model     *string `json:"model,omitempty"`
		Brand     *string `json:"brand,omitempty"`
		Year      *int    `json:"year,omitempty"`
		Available *bool   `json:"available,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := map[string]any{}
	if req.Plate != nil {
		fields["plate"] = *req.Plate
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	if err := h.Repo.UpdateVehicle(c.Request.Context(), c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle updated successfully"})
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	if err := h.Repo.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
