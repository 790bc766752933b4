package profilesync

import "errors"

var (
	// ErrUnknownField is returned by SetField for a field name the record
	// does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrReadOnlyField is returned by SetField for the identity field.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrNotEditing is returned when a profile is changed or saved outside
	// edit mode.
	ErrNotEditing = errors.New("profile is not in edit mode")
)
