package store

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// ContactRepository is the persistence contract for contact entries.
// Every lookup and mutation is scoped to the owning username, so records
// of other users are indistinguishable from absent ones.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContact(ctx context.Context, username string, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, username string, contactID int64) error

	// SearchContacts returns one page of the owner's contacts matching the
	// supplied filters, plus the total match count before pagination.
	SearchContacts(ctx context.Context, username string, search models.SearchContactRequest) ([]models.Contact, int64, error)
}

// AddressRepository is the persistence contract for addresses. Scoping to
// the parent contact is the repository's half of the two-level ownership
// chain; verifying the contact's owner is the service's half.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
	FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error)
	UpdateAddress(ctx context.Context, address models.Address) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
}
