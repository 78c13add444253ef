package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not signed in")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrNoActiveTenant     = errors.New("no active tenant")
	ErrTenantMismatch     = errors.New("session tenant does not match active tenant")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUser        = errors.New("invalid user")
)
