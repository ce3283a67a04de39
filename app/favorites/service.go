package favorites

import (
	"context"
	"errors"

	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/app/user"
	"github.com/joefazee/atlas/models"
)

type service struct {
	sessions  user.Service
	directory countries.Service
}

// NewService composes the session service with the country directory.
func NewService(sessions user.Service, directory countries.Service) Service {
	return &service{sessions: sessions, directory: directory}
}

func (s *service) List(ctx context.Context) ([]FavoriteCountry, error) {
	codes, err := s.sessions.Favorites()
	if err != nil {
		return nil, err
	}

	resolved := make([]FavoriteCountry, 0, len(codes))
	for _, code := range codes {
		detail, err := s.directory.GetByCode(ctx, code)
		if err != nil {
			// A favorite the directory no longer knows about still
			// belongs to the user.
			resolved = append(resolved, FavoriteCountry{Code: code})
			continue
		}
		resolved = append(resolved, FavoriteCountry{
			Code:       detail.Code,
			Name:       detail.Name,
			Region:     detail.Region,
			Capital:    detail.Capital,
			Population: detail.Population,
			Flag:       detail.Flags.PNG,
			Resolved:   true,
		})
	}
	return resolved, nil
}

func (s *service) Toggle(ctx context.Context, code string) (*ToggleResponse, error) {
	// Unknown codes toggle fine locally, but a code the directory can
	// resolve is normalized to its canonical cca3 form.
	if detail, err := s.directory.GetByCode(ctx, code); err == nil {
		code = detail.Code
	} else if !errors.Is(err, models.ErrRecordNotFound) && !errors.Is(err, models.ErrProviderUnavailable) {
		return nil, err
	}

	isNowFavorite, err := s.sessions.ToggleFavorite(ctx, code)
	if err != nil {
		return nil, err
	}
	return &ToggleResponse{Code: code, IsFavorite: isNowFavorite}, nil
}

func (s *service) Membership(code string) (*MembershipResponse, error) {
	return &MembershipResponse{
		Code:       code,
		IsFavorite: s.sessions.IsFavorite(code),
	}, nil
}
