package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidOwnerEmail = errors.New("invalid owner email")
	ErrPetIDProvided     = errors.New("pet id is assigned by the server")
)
