package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents one simulated account in the registry. Favorites is the
// authoritative favorites representation; the per-account mirror key is a
// derived cache maintained by the session service.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Favorites    []string  `json:"favorites"`
	CreatedAt    time.Time `json:"created_at"`
}

// SetPassword hashes and stores the password. Plaintext is never kept.
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// NormalizeFavorites repairs a missing or duplicated favorites list.
// Order of first occurrence is preserved. Returns true if the list changed.
func (u *User) NormalizeFavorites() bool {
	if u.Favorites == nil {
		u.Favorites = []string{}
		return true
	}
	seen := make(map[string]bool, len(u.Favorites))
	deduped := u.Favorites[:0:0]
	for _, code := range u.Favorites {
		if !seen[code] {
			seen[code] = true
			deduped = append(deduped, code)
		}
	}
	changed := len(deduped) != len(u.Favorites)
	u.Favorites = deduped
	return changed
}

// ToggleFavorite flips membership of code in the favorites set and
// reports whether the code is a favorite afterwards.
func (u *User) ToggleFavorite(code string) bool {
	for i, fav := range u.Favorites {
		if fav == code {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return false
		}
	}
	u.Favorites = append(u.Favorites, code)
	return true
}

// HasFavorite reports membership of code in the favorites set.
func (u *User) HasFavorite(code string) bool {
	for _, fav := range u.Favorites {
		if fav == code {
			return true
		}
	}
	return false
}

// MergeFavorites prepends other's codes to the user's favorites,
// deduplicating while preserving first-occurrence order. Used at login to
// fold a transient anonymous session's favorites into the stored account.
func (u *User) MergeFavorites(other []string) {
	merged := make([]string, 0, len(other)+len(u.Favorites))
	merged = append(merged, other...)
	merged = append(merged, u.Favorites...)
	u.Favorites = merged
	u.NormalizeFavorites()
}

// NormalizeEmail lowercases and trims an email address. Registration and
// login both pass emails through here so the uniqueness key has a single
// case policy.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail reports whether identity looks like an email address.
func IsEmail(identity string) bool {
	return strings.Count(identity, "@") == 1 && !strings.ContainsAny(identity, " \t")
}
