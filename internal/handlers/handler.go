package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/repository"
	"github.com/fgabrielqr/sistema-viagens/internal/service"
)

type Handler struct {
	Repo  *repository.Repository
	Auth  *service.AuthService
	Trips *service.TripService
}

func NewHandler(repo *repository.Repository, auth *service.AuthService, trips *service.TripService) *Handler {
	return &Handler{
		Repo:  repo,
		Auth:  auth,
		Trips: trips,
	}
}

// respondError translates the domain error taxonomy into HTTP responses.
// A failed operation never takes the rest of the interface down with it;
// the caller just gets a short message for this one action.
func respondError(c *gin.Context, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		status := http.StatusBadRequest
		if ve.Conflict {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": ve.Message})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, models.ErrBackendUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage backend unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// sanitize strips the stored plain-text password before a user leaves the API.
func sanitize(u models.User) models.User {
	u.Password = ""
	return u
}

func sanitizeAll(users []models.User) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = sanitize(u)
	}
	return out
}
