package service

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

// UserService owns the account lifecycle: registration, session tokens,
// profile updates, and the token-to-user resolution used by the auth
// middleware.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)
	Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error)
	Get(ctx context.Context, user models.User) (models.UserResponse, error)
	Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error)
	Logout(ctx context.Context, user models.User) (bool, error)

	// FindByToken resolves an opaque bearer token to the account holding
	// it. It is the precondition of every authenticated operation.
	FindByToken(ctx context.Context, token string) (models.User, error)
}

// ContactService owns contact CRUD and search. Every operation is scoped to
// the calling user; contacts of other users behave as absent.
type ContactService interface {
	Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error)
	Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error)
	Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error)
	Remove(ctx context.Context, user models.User, contactID int64) (bool, error)
	Search(ctx context.Context, user models.User, req models.SearchContactRequest) (models.ContactPageResponse, error)

	// Exists verifies that the contact is present and owned by username.
	// Both the contact and address services use it as their ownership gate.
	Exists(ctx context.Context, username string, contactID int64) (models.Contact, error)
}

// AddressService owns address CRUD under a contact. Every operation first
// runs the two-level ownership chain: the parent contact must belong to the
// caller, then the address must belong to that contact.
type AddressService interface {
	Create(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error)
	Get(ctx context.Context, user models.User, contactID, addressID int64) (models.AddressResponse, error)
	Update(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error)
	Remove(ctx context.Context, user models.User, contactID, addressID int64) (bool, error)
	List(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error)
}

// HealthService reports whether the storage backend is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}
