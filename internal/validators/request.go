package validators

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-pet-portal/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldEmail targets the account identity of a user.
	FieldEmail = "email"

	// FieldOwnerEmail targets the owner identity of a pet.
	FieldOwnerEmail = "owner_email"

	// FieldPetIDForCreation enforces that a new pet carries no id.
	FieldPetIDForCreation = "pet id for creation"
)

const emailRule = "required,email"

// RequestValidator implements Validator for the records accepted by the
// dev server: models.User and models.Pet, as values or pointers.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	return &RequestValidator{validate: validator.New()}
}

// Validate dispatches on the dynamic type of obj. When no fields are given a
// default set is checked: FieldEmail for users, FieldOwnerEmail for pets.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Pet:
		return v.validatePet(ctx, value, fields...)
	case *models.Pet:
		return v.validatePet(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.validate.VarCtx(ctx, user.Email, emailRule); err != nil {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePet(ctx context.Context, pet models.Pet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerEmail:
			if err := v.validate.VarCtx(ctx, pet.OwnerEmail, emailRule); err != nil {
				return ErrInvalidOwnerEmail
			}
		case FieldPetIDForCreation:
			if pet.ID != "" {
				return ErrPetIDProvided
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
