package models

// Pet is the editable record of the "add pet" form.
//
// All attributes are kept as free-form strings: the form performs no schema or
// type checks and the server is the only authority on their meaning. Age is a
// string for the same reason ("3", "3 months", ...).
type Pet struct {
	// ID is assigned by the server on creation. Never sent by the client.
	ID string `json:"id,omitempty"`

	// Name is the pet's display name.
	Name string `json:"name"`

	// Species is the kind of animal (e.g. "dog", "cat").
	Species string `json:"species"`

	// Breed is the pet's breed within its species.
	Breed string `json:"breed"`

	// Age is the pet's age as entered by the user.
	Age string `json:"age"`

	// Notes holds arbitrary free text about the pet.
	Notes string `json:"notes"`

	// OwnerEmail is the identity of the owner. It is always derived from the
	// session credential and is never editable through the form.
	OwnerEmail string `json:"ownerEmail"`
}

// Pet field names accepted by form setters.
const (
	PetFieldName       = "name"
	PetFieldSpecies    = "species"
	PetFieldBreed      = "breed"
	PetFieldAge        = "age"
	PetFieldNotes      = "notes"
	PetFieldOwnerEmail = "ownerEmail"
)

// PetEditableFields lists the fields a user may change, in display order.
var PetEditableFields = []string{
	PetFieldName,
	PetFieldSpecies,
	PetFieldBreed,
	PetFieldAge,
	PetFieldNotes,
}

// ClearInputs returns a copy of p with every user-entered field reset while
// keeping the owner identity.
func (p Pet) ClearInputs() Pet {
	return Pet{OwnerEmail: p.OwnerEmail}
}
