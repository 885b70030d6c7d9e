package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
)

// GetUsers lists registered users, optionally narrowed by role
// (e.g. /api/users?role=driver for the trip form).
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Repo.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if role := c.Query("role"); role != "" {
		filtered := users[:0]
		for _, u := range users {
			if u.Role == role {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	c.JSON(http.StatusOK, sanitizeAll(users))
}

// CreateUser registers a user. The admin screens use it for driver
// registration, so the role defaults to driver.
func (h *Handler) CreateUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleDriver
	}
	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	created, err := h.Repo.CreateUser(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sanitize(created))
}

// UpdateUser applies a partial edit; only the fields present in the body
// are touched.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req struct {
		Name     *string `json:"name,omitempty"`
		Email    *string `json:"email,omitempty"`
		Password *string `json:"password,omitempty"`
		Role     *string `json:"role,omitempty"`
		Phone    *string `json:"phone,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		fields["password"] = *req.Password
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	if err := h.Repo.UpdateUser(c.Request.Context(), c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.Repo.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
