package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
)

func (h *Handler) GetPatients(c *gin.Context) {
	patients, err := h.Repo.Patients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		City    string `json:"city" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Repo.CreatePatient(c.Request.Context(), models.Patient{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		City:    req.City,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var req struct {
		Name    *string `json:"name,omitempty"`
		Address *string `json:"address,omitempty"`
		Phone   *string `json:"phone,omitempty"`
		City    *string `json:"city,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	if err := h.Repo.UpdatePatient(c.Request.Context(), c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}

func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.Repo.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}
