package models

// Contact is a single contact-book entry owned by exactly one user.
// Ownership is carried by the Username column; every read and mutation
// filters on it so that records of other users behave as absent.
type Contact struct {
	// ID is the server-assigned surrogate key.
	ID int64 `json:"id"`

	// Username references the owning user. Never exposed via JSON —
	// the API only ever returns a caller's own contacts.
	Username string `json:"-"`

	// FirstName is the only required name component.
	FirstName string `json:"first_name"`

	// LastName, Email and Phone are optional; nil maps to SQL NULL.
	LastName *string `json:"last_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
