// Package service holds the authentication gate and the trip lifecycle
// manager, the two places where the scheduling rules actually live.
package service

import (
	"context"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/repository"
	"github.com/fgabrielqr/sistema-viagens/internal/store"
)

type AuthService struct {
	repo *repository.Repository
}

func NewAuthService(repo *repository.Repository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate matches email and password exactly against the stored
// credentials. Passwords are plain text, inherited from the original system
// and kept as-is; see DESIGN.md.
//
// Bootstrap rule: when no stored user holds the default admin email and the
// supplied credentials are exactly the default pair, the admin account is
// recreated on the fly. A fresh or wiped deployment therefore can never lock
// the admin out. An existing record is never overridden: a wrong password
// for a present email always fails.
//
// Every failure is models.ErrInvalidCredentials; the caller cannot tell an
// unknown email from a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	users, err := s.repo.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	if email == store.DefaultAdminEmail && password == store.DefaultAdminPassword {
		for _, u := range users {
			if u.Email == store.DefaultAdminEmail {
				return models.User{}, models.ErrInvalidCredentials
			}
		}
		admin, err := s.repo.CreateUser(ctx, models.User{
			Name:     "Damir Silva",
			Email:    store.DefaultAdminEmail,
			Password: store.DefaultAdminPassword,
			Role:     models.RoleAdmin,
		})
		if err != nil {
			return models.User{}, err
		}
		return admin, nil
	}
	return models.User{}, models.ErrInvalidCredentials
}

// Login records the authenticated user in the logged-in-user slot.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	if err := s.repo.Store().SetSession(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.repo.Store().ClearSession(ctx)
}

// CurrentSessionUser reads the logged-in-user slot. The bool reports whether
// a session is present.
func (s *AuthService) CurrentSessionUser(ctx context.Context) (models.User, bool, error) {
	var user models.User
	ok, err := s.repo.Store().GetSession(ctx, &user)
	if err != nil || !ok {
		return models.User{}, false, err
	}
	return user, true, nil
}
