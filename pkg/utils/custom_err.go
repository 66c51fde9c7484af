package utils

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrPetNotFound        = errors.New("pet not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSignature   = errors.New("missing signature")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrDatabaseError      = errors.New("database error")
	ErrPaymentProvider    = errors.New("payment provider error")
)
