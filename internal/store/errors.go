package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCookieNotFound is returned when the requested cookie is not stored
	// or has already expired.
	ErrCookieNotFound = errors.New("cookie not found")

	// ErrUserAlreadyExists is returned when an account with the same email is
	// already stored.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when no account matches the email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPetNotSaved is returned when a pet cannot be stored (for example,
	// because it carries no owner).
	ErrPetNotSaved = errors.New("pet was not saved")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
