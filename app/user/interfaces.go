package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/atlas/models"
)

// Repository is the account registry. Accounts live as a single JSON
// array under one key in the KV store, so every write is a
// read-modify-write of the whole registry.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Service manages the single active session and its favorites.
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*LoginResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context) error

	// CurrentUser returns a copy of the active session's account, or
	// models.ErrUnauthorized when no session is active.
	CurrentUser() (*models.User, error)

	// ActiveUserID reports the account bound to the current session.
	// The zero UUID means no session is active.
	ActiveUserID() uuid.UUID

	// ToggleFavorite flips membership of code in the active session's
	// favorites and reports whether the code is now a favorite.
	ToggleFavorite(ctx context.Context, code string) (bool, error)

	IsFavorite(code string) bool
	Favorites() ([]string, error)
}
