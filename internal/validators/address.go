package validators

import "github.com/MKhiriev/go-contact-book/models"

// Address field bounds.
const (
	addressStreetMaxLen   = 255
	addressCityMaxLen     = 100
	addressProvinceMaxLen = 100
	addressCountryMaxLen  = 100
	addressPostalMaxLen   = 10
)

// validateAddressFields applies the shared field rules of create and update.
func validateAddressFields(v *violations, street, city, province *string, country, postalCode string) {
	optionalString(v, FieldStreet, street, 1, addressStreetMaxLen)
	optionalString(v, FieldCity, city, 1, addressCityMaxLen)
	optionalString(v, FieldProvince, province, 1, addressProvinceMaxLen)
	requireString(v, FieldCountry, country, 1, addressCountryMaxLen)
	requireString(v, FieldPostalCode, postalCode, 1, addressPostalMaxLen)
}

// ValidateCreateAddress checks the payload of
// POST /api/contacts/{contactID}/addresses. The parent contact identifier
// comes from the URL and must be positive.
func ValidateCreateAddress(req models.CreateAddressRequest) (models.CreateAddressRequest, error) {
	v := &violations{}

	requirePositive(v, FieldContactID, req.ContactID)
	validateAddressFields(v, req.Street, req.City, req.Province, req.Country, req.PostalCode)

	return req, v.err()
}

// ValidateUpdateAddress checks the payload of
// PUT /api/contacts/{contactID}/addresses/{addressID}.
func ValidateUpdateAddress(req models.UpdateAddressRequest) (models.UpdateAddressRequest, error) {
	v := &violations{}

	requirePositive(v, FieldID, req.ID)
	requirePositive(v, FieldContactID, req.ContactID)
	validateAddressFields(v, req.Street, req.City, req.Province, req.Country, req.PostalCode)

	return req, v.err()
}
