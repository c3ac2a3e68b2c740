package models

// RegisterUserRequest is the payload of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginUserRequest is the payload of POST /api/users/login.
type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the payload of PATCH /api/users/current.
// Both fields are optional, but at least one must be present;
// nil means "leave unchanged".
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// CreateContactRequest is the payload of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// UpdateContactRequest is the payload of PUT /api/contacts/{contactID}.
// ID is taken from the URL, not the body.
type UpdateContactRequest struct {
	ID        int64   `json:"-"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// SearchContactRequest carries the query parameters of GET /api/contacts.
// Empty filter strings mean "no filter on this field"; the supplied filters
// are AND-ed together by the store.
type SearchContactRequest struct {
	// Name matches as a substring of either first or last name.
	Name string

	// Email and Phone match as substrings of their respective fields.
	Email string
	Phone string

	// Page is 1-based; Size is the page length. Both must be positive.
	Page int
	Size int
}

// CreateAddressRequest is the payload of POST /api/contacts/{contactID}/addresses.
// ContactID is taken from the URL, not the body.
type CreateAddressRequest struct {
	ContactID  int64   `json:"-"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// UpdateAddressRequest is the payload of
// PUT /api/contacts/{contactID}/addresses/{addressID}.
// Both identifiers come from the URL.
type UpdateAddressRequest struct {
	ID         int64   `json:"-"`
	ContactID  int64   `json:"-"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}
