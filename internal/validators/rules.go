package validators

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// Field name constants shared by the per-operation validators. They appear
// verbatim in violation messages and in the error envelope.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"

	FieldContactID  = "contact_id"
	FieldStreet     = "street"
	FieldCity       = "city"
	FieldProvince   = "province"
	FieldCountry    = "country"
	FieldPostalCode = "postal_code"

	FieldPage = "page"
	FieldSize = "size"
)

// requireString enforces presence plus length bounds on a mandatory field.
// Length is counted in runes, matching how users perceive the limit.
func requireString(v *violations, field, value string, min, max int) {
	length := utf8.RuneCountInString(value)
	switch {
	case length == 0:
		v.add(field, "is required")
	case length < min:
		v.add(field, fmt.Sprintf("must be at least %d characters", min))
	case length > max:
		v.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// optionalString enforces length bounds only when the field is present.
func optionalString(v *violations, field string, value *string, min, max int) {
	if value == nil {
		return
	}

	length := utf8.RuneCountInString(*value)
	switch {
	case length < min:
		v.add(field, fmt.Sprintf("must be at least %d characters", min))
	case length > max:
		v.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// optionalEmail enforces length bounds and mailbox shape when present.
func optionalEmail(v *violations, field string, value *string, min, max int) {
	if value == nil {
		return
	}

	before := len(v.list)
	optionalString(v, field, value, min, max)
	if len(v.list) > before {
		return
	}

	if _, err := mail.ParseAddress(*value); err != nil {
		v.add(field, "must be a valid email address")
	}
}

// requirePositive enforces a strictly positive integer identifier.
func requirePositive[T int | int64](v *violations, field string, value T) {
	if value < 1 {
		v.add(field, "must be a positive number")
	}
}
