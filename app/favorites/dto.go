package favorites

// FavoriteCountry is a favorite code resolved against the country
// directory. Resolved is false when the directory has no record for the
// code, in which case only Code is set.
type FavoriteCountry struct {
	Code       string `json:"code"`
	Name       string `json:"name,omitempty"`
	Region     string `json:"region,omitempty"`
	Capital    string `json:"capital,omitempty"`
	Population int64  `json:"population,omitempty"`
	Flag       string `json:"flag,omitempty"`
	Resolved   bool   `json:"resolved"`
}

// ToggleResponse reports the membership state after a toggle.
type ToggleResponse struct {
	Code       string `json:"code"`
	IsFavorite bool   `json:"is_favorite"`
}

// MembershipResponse reports whether a code is a favorite.
type MembershipResponse struct {
	Code       string `json:"code"`
	IsFavorite bool   `json:"is_favorite"`
}
