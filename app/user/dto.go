package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

// RegisterRequest represents the request to create an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate(v *validator.Validator, strip sanitizer.HTMLStripperer) bool {
	r.Name = strip.StripHTML(r.Name)
	r.Email = models.NormalizeEmail(r.Email)

	v.Check(r.Name != "", "name", "name is required")
	v.Check(validator.MaxRunes(r.Name, 150), "name", "name must not be more than 150 characters")
	v.Check(validator.IsEmail(r.Email), "email", "email is invalid")
	v.Check(len(r.Password) >= 6, "password", "password must be at least 6 characters")

	return v.Valid()
}

// LoginRequest represents the request to log in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Response represents the response for account data.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Favorites []string  `json:"favorites"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents the response for a successful login or
// registration.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	User        Response `json:"user"`
}

// NewResponse maps an account to its API representation.
func NewResponse(u *models.User) Response {
	favorites := u.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return Response{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Favorites: favorites,
		CreatedAt: u.CreatedAt,
	}
}
