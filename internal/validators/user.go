package validators

import "github.com/MKhiriev/go-contact-book/models"

// User credential and display-name bounds shared by all user operations.
const (
	userFieldMinLen = 4
	userFieldMaxLen = 100
)

// ValidateRegisterUser checks the payload of POST /api/users.
// All three fields are required, each 4..100 characters.
func ValidateRegisterUser(req models.RegisterUserRequest) (models.RegisterUserRequest, error) {
	v := &violations{}

	requireString(v, FieldUsername, req.Username, userFieldMinLen, userFieldMaxLen)
	requireString(v, FieldPassword, req.Password, userFieldMinLen, userFieldMaxLen)
	requireString(v, FieldName, req.Name, userFieldMinLen, userFieldMaxLen)

	return req, v.err()
}

// ValidateLoginUser checks the payload of POST /api/users/login.
func ValidateLoginUser(req models.LoginUserRequest) (models.LoginUserRequest, error) {
	v := &violations{}

	requireString(v, FieldUsername, req.Username, userFieldMinLen, userFieldMaxLen)
	requireString(v, FieldPassword, req.Password, userFieldMinLen, userFieldMaxLen)

	return req, v.err()
}

// ValidateUpdateUser checks the payload of PATCH /api/users/current.
// Both fields are optional, but at least one must be supplied — the
// cross-field rule that makes an empty update a validation failure rather
// than a silent no-op.
func ValidateUpdateUser(req models.UpdateUserRequest) (models.UpdateUserRequest, error) {
	v := &violations{}

	if req.Name == nil && req.Password == nil {
		v.add(FieldName, "at least one of name or password must be provided")
		return req, v.err()
	}

	optionalString(v, FieldName, req.Name, userFieldMinLen, userFieldMaxLen)
	optionalString(v, FieldPassword, req.Password, userFieldMinLen, userFieldMaxLen)

	return req, v.err()
}
