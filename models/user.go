package models

// UserProfile is the editable record of the "manage profile" form.
//
// The get-user endpoint may return more attributes than the form shows; only
// the four fields below take part in the round trip. Email is carried for the
// dev server and for display, it is never sent in an update body.
type UserProfile struct {
	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// PhoneNumber is a free-form contact number.
	PhoneNumber string `json:"phoneNumber"`

	// Address is a free-form, possibly multi-line postal address.
	Address string `json:"address"`
}

// User is the server-side account as returned by get-user. It embeds the
// editable profile and adds the identity key.
type User struct {
	UserProfile

	// Email is the account identity and the lookup key of every user endpoint.
	Email string `json:"email"`
}

// Profile field names accepted by form setters.
const (
	ProfileFieldFirstName   = "firstName"
	ProfileFieldLastName    = "lastName"
	ProfileFieldPhoneNumber = "phoneNumber"
	ProfileFieldAddress     = "address"

	// ProfileFieldEmail is the identity field. It is shown but never set.
	ProfileFieldEmail = "email"
)

// ProfileEditableFields lists the profile fields in display order.
var ProfileEditableFields = []string{
	ProfileFieldFirstName,
	ProfileFieldLastName,
	ProfileFieldPhoneNumber,
	ProfileFieldAddress,
}
