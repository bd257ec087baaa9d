package application

import "github.com/pkg/errors"

// Sentinel errors for blog operations. Services wrap them with context via
// errors.Wrap; handlers match them with errors.Is.
var (
	// ErrValidation indicates a missing or empty required field.
	// HTTP Status: 400 Bad Request
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the entity is absent (or, for lists, that there is nothing to show).
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates a missing, invalid or expired token.
	// HTTP Status: 401 Unauthorized
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates the caller does not own the resource.
	// HTTP Status: 403 Forbidden
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials indicates a password mismatch on login.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyLiked indicates the (post, user) like already exists.
	// HTTP Status: 400 Bad Request
	ErrAlreadyLiked = errors.New("already liked")

	// ErrNotLiked indicates there is no (post, user) like to remove.
	// HTTP Status: 404 Not Found
	ErrNotLiked = errors.New("not liked")

	// ErrUpdateFailed indicates an update matched no rows.
	// HTTP Status: 400 Bad Request
	ErrUpdateFailed = errors.New("update failed")

	// ErrPersistence indicates a storage failure the caller cannot fix.
	// HTTP Status: 500 Internal Server Error
	ErrPersistence = errors.New("persistence failure")
)

// persistence wraps a storage error so callers see ErrPersistence while logs keep the cause.
func persistence(err error, op string) error {
	return errors.Wrapf(ErrPersistence, "%s: %v", op, err)
}
