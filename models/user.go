package models

// User represents an account entity used for authentication and authorization.
// The username doubles as the primary key; there is no surrogate ID.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique, stable identifier of the account.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password stores the bcrypt hash of the user's password.
	// It MUST never hold a plaintext value and is never serialised.
	Password string `json:"-"`

	// Token is the opaque session credential issued at registration and
	// regenerated on every login. Nil means the user is logged out.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
