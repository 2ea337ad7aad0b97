package service

import "errors"

// Operation failures surfaced to the GraphQL layer. Each maps to a stable
// error code in the response.
var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidResetToken = errors.New("reset token is invalid or expired")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrItemNotFound      = errors.New("item not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidPermission = errors.New("unknown permission")
	ErrMailDelivery      = errors.New("mail delivery failed")
	ErrResetThrottled    = errors.New("a reset mail was sent recently")
)
