package favorites

import "context"

// Service exposes the active session's favorites resolved against the
// country directory.
type Service interface {
	// List resolves each favorite code to a country record. Codes the
	// directory cannot resolve come back as code-only entries.
	List(ctx context.Context) ([]FavoriteCountry, error)

	Toggle(ctx context.Context, code string) (*ToggleResponse, error)
	Membership(code string) (*MembershipResponse, error)
}
