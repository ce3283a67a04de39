package user

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/atlas/internal/kvstore"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/security"
	"github.com/joefazee/atlas/models"
)

const (
	// SessionKey is the KV key holding the active session snapshot.
	// At most one session is active at a time.
	SessionKey = "userInfo"

	favoritesKeyPrefix = "favorites_"
)

// FavoritesKey returns the per-account favorites mirror key. The mirror
// is derived from the session snapshot and survives logout.
func FavoritesKey(id uuid.UUID) string {
	return favoritesKeyPrefix + id.String()
}

type service struct {
	repo          Repository
	store         kvstore.Store
	tokenMaker    security.Maker
	logger        logger.Logger
	tokenDuration time.Duration

	mu      sync.RWMutex
	current *models.User
}

// NewService creates the session service and rehydrates any persisted
// session. A corrupt session record is discarded and logged; callers
// always get a working, possibly unauthenticated, service.
func NewService(ctx context.Context, repo Repository, store kvstore.Store, tokenMaker security.Maker, log logger.Logger, cfg *Config) Service {
	s := &service{
		repo:          repo,
		store:         store,
		tokenMaker:    tokenMaker,
		logger:        log,
		tokenDuration: cfg.TokenDuration,
	}
	s.rehydrate(ctx)
	return s
}

func (s *service) rehydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			s.logger.Error(err, map[string]interface{}{"key": SessionKey})
		}
		return
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Error(models.ErrCorruptSession, map[string]interface{}{
			"key":   SessionKey,
			"cause": err.Error(),
		})
		_ = s.store.Delete(ctx, SessionKey)
		return
	}

	if u.NormalizeFavorites() {
		if err := kvstore.SetJSON(ctx, s.store, SessionKey, &u); err != nil {
			s.logger.Error(err, map[string]interface{}{"key": SessionKey})
		}
	}
	s.current = &u
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*LoginResponse, error) {
	u := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     models.NormalizeEmail(req.Email),
		Favorites: []string{},
		CreatedAt: time.Now(),
	}
	if err := u.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.startSession(ctx, u)
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.CheckPassword(req.Password) {
		return nil, models.ErrInvalidCredentials
	}

	// Favorites saved under the account's mirror key by an earlier
	// session take part in the new session.
	var mirror []string
	if err := kvstore.GetJSON(ctx, s.store, FavoritesKey(u.ID), &mirror); err == nil {
		u.MergeFavorites(mirror)
	}
	u.NormalizeFavorites()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return s.startSession(ctx, u)
}

// startSession persists the snapshot, binds a token to the account and
// replaces any previous session.
func (s *service) startSession(ctx context.Context, u *models.User) (*LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = u
	if err := s.persistSession(ctx); err != nil {
		s.current = nil
		return nil, err
	}

	token, _, err := s.tokenMaker.CreateToken(u.ID, s.tokenDuration, security.TokenScopeAccess)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{AccessToken: token, User: NewResponse(u)}, nil
}

// persistSession writes the snapshot and the favorites mirror. Callers
// must hold mu.
func (s *service) persistSession(ctx context.Context) error {
	if err := kvstore.SetJSON(ctx, s.store, SessionKey, s.current); err != nil {
		return err
	}
	return kvstore.SetJSON(ctx, s.store, FavoritesKey(s.current.ID), s.current.Favorites)
}

func (s *service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.ErrUnauthorized
	}

	if err := s.repo.Update(ctx, s.current); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, SessionKey); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return err
	}

	s.current = nil
	return nil
}

func (s *service) CurrentUser() (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, models.ErrUnauthorized
	}
	u := *s.current
	u.Favorites = append([]string(nil), s.current.Favorites...)
	return &u, nil
}

func (s *service) ActiveUserID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return uuid.Nil
	}
	return s.current.ID
}

func (s *service) ToggleFavorite(ctx context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false, models.ErrUnauthorized
	}

	isNowFavorite := s.current.ToggleFavorite(code)
	if err := s.persistSession(ctx); err != nil {
		return false, err
	}
	return isNowFavorite, nil
}

func (s *service) IsFavorite(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current != nil && s.current.HasFavorite(code)
}

func (s *service) Favorites() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, models.ErrUnauthorized
	}
	return append([]string{}, s.current.Favorites...), nil
}
