package validators

import "github.com/MKhiriev/go-contact-book/models"

// Contact field bounds.
const (
	contactNameMinLen = 2
	contactNameMaxLen = 100
	contactEmailMin   = 3
	contactEmailMax   = 100
	contactPhoneMin   = 6
	contactPhoneMax   = 20
)

// validateContactFields applies the shared field rules of create and update.
func validateContactFields(v *violations, firstName string, lastName, email, phone *string) {
	requireString(v, FieldFirstName, firstName, contactNameMinLen, contactNameMaxLen)
	optionalString(v, FieldLastName, lastName, contactNameMinLen, contactNameMaxLen)
	optionalEmail(v, FieldEmail, email, contactEmailMin, contactEmailMax)
	optionalString(v, FieldPhone, phone, contactPhoneMin, contactPhoneMax)
}

// ValidateCreateContact checks the payload of POST /api/contacts.
func ValidateCreateContact(req models.CreateContactRequest) (models.CreateContactRequest, error) {
	v := &violations{}

	validateContactFields(v, req.FirstName, req.LastName, req.Email, req.Phone)

	return req, v.err()
}

// ValidateUpdateContact checks the payload of PUT /api/contacts/{contactID}.
// The identifier comes from the URL and must be positive.
func ValidateUpdateContact(req models.UpdateContactRequest) (models.UpdateContactRequest, error) {
	v := &violations{}

	requirePositive(v, FieldID, req.ID)
	validateContactFields(v, req.FirstName, req.LastName, req.Email, req.Phone)

	return req, v.err()
}

// ValidateSearchContact checks the query parameters of GET /api/contacts.
// Filter strings are free-form substrings and carry no bounds; page and
// size must both be positive.
func ValidateSearchContact(req models.SearchContactRequest) (models.SearchContactRequest, error) {
	v := &violations{}

	requirePositive(v, FieldPage, req.Page)
	requirePositive(v, FieldSize, req.Size)

	return req, v.err()
}
