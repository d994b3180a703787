package storage

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrUserExists         = errors.New("user already registered")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("operation not permitted")
)

// CredentialsError carries the auth provider's message for a rejected login.
type CredentialsError struct {
	Message string
}

func (e *CredentialsError) Error() string {
	if e.Message == "" {
		return ErrInvalidCredentials.Error()
	}
	return e.Message
}

func (e *CredentialsError) Unwrap() error {
	return ErrInvalidCredentials
}
