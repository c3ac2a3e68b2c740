package models

// Address is a postal address nested under a contact. It is owner-scoped
// transitively: access requires the parent contact to belong to the caller
// and the address to belong to that specific contact.
type Address struct {
	// ID is the server-assigned surrogate key.
	ID int64 `json:"id"`

	// ContactID references the parent contact.
	ContactID int64 `json:"-"`

	// Street, City and Province are optional; nil maps to SQL NULL.
	Street   *string `json:"street"`
	City     *string `json:"city"`
	Province *string `json:"province"`

	// Country and PostalCode are required on every address.
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}
