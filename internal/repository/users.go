package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/store"
	"github.com/fgabrielqr/sistema-viagens/internal/utils"
)

func (r *Repository) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.store.GetAll(ctx, store.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) UserByID(ctx context.Context, id string) (models.User, error) {
	users, err := r.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
}

// UserByEmail matches case-sensitively, the same way login does.
func (r *Repository) UserByEmail(ctx context.Context, email string) (models.User, bool, error) {
	users, err := r.Users(ctx)
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (r *Repository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if u.Name == "" {
		return models.User{}, models.NewValidationError("name", "name is required")
	}
	if u.Email == "" {
		return models.User{}, models.NewValidationError("email", "email is required")
	}
	if u.Password == "" {
		return models.User{}, models.NewValidationError("password", "password is required")
	}
	if !models.ValidRole(u.Role) {
		return models.User{}, models.NewValidationError("role", "role must be admin or driver")
	}
	if u.Phone != nil {
		if !utils.ValidPhone(*u.Phone) {
			return models.User{}, models.NewValidationError("phone", "invalid phone number")
		}
		formatted := utils.FormatPhone(*u.Phone)
		u.Phone = &formatted
	}
	if err := r.checkEmailUnique(ctx, u.Email, ""); err != nil {
		return models.User{}, err
	}
	id, err := r.store.Add(ctx, store.CollectionUsers, u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

// UpdateUser applies a partial update. An email change is re-checked for
// uniqueness against every other user.
func (r *Repository) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	if email, ok := fields["email"].(string); ok {
		if email == "" {
			return models.NewValidationError("email", "email is required")
		}
		if err := r.checkEmailUnique(ctx, email, id); err != nil {
			return err
		}
	}
	if role, ok := fields["role"].(string); ok && !models.ValidRole(role) {
		return models.NewValidationError("role", "role must be admin or driver")
	}
	if phone, ok := fields["phone"].(string); ok {
		if !utils.ValidPhone(phone) {
			return models.NewValidationError("phone", "invalid phone number")
		}
		fields["phone"] = utils.FormatPhone(phone)
	}
	return r.store.Update(ctx, store.CollectionUsers, id, fields)
}

func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionUsers, id)
}

func (r *Repository) checkEmailUnique(ctx context.Context, email, selfID string) error {
	users, err := r.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID != selfID && strings.EqualFold(u.Email, email) {
			return models.NewConflictError("email", "an account with this email already exists")
		}
	}
	return nil
}
