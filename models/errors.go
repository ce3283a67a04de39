package models

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrProviderUnavailable = errors.New("country data provider unavailable")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrCorruptSession     = errors.New("corrupt session record")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidRegion    = errors.New("invalid region")

	ErrRefreshInFlight = errors.New("a country refresh is already in progress")
)
