package user

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/joefazee/atlas/internal/kvstore"
	"github.com/joefazee/atlas/models"
)

// UsersKey is the KV key holding the full account registry.
const UsersKey = "users"

type repository struct {
	store kvstore.Store

	// mu serializes read-modify-write cycles on the registry key.
	mu sync.Mutex
}

// NewRepository creates a KV-backed account registry.
func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) load(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := kvstore.GetJSON(ctx, r.store, UsersKey, &users)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []models.User{}, nil
		}
		return nil, err
	}
	return users, nil
}

func (r *repository) save(ctx context.Context, users []models.User) error {
	return kvstore.SetJSON(ctx, r.store, UsersKey, users)
}

func (r *repository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	email := models.NormalizeEmail(user.Email)
	for i := range users {
		if models.NormalizeEmail(users[i].Email) == email {
			return models.ErrDuplicateEmail
		}
	}

	users = append(users, *user)
	return r.save(ctx, users)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	email = models.NormalizeEmail(email)
	for i := range users {
		if models.NormalizeEmail(users[i].Email) == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, models.ErrRecordNotFound
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, models.ErrRecordNotFound
}

func (r *repository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return r.save(ctx, users)
		}
	}
	return models.ErrRecordNotFound
}
