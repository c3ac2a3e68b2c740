package service

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

// mockUserRepository is a function-field test double for store.UserRepository.
type mockUserRepository struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
	findUserByTokenFunc    func(ctx context.Context, token string) (models.User, error)
	updateUserFunc         func(ctx context.Context, user models.User) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return m.findUserByTokenFunc(ctx, token)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.updateUserFunc(ctx, user)
}

// mockContactRepository is a function-field test double for store.ContactRepository.
type mockContactRepository struct {
	createContactFunc  func(ctx context.Context, contact models.Contact) (models.Contact, error)
	findContactFunc    func(ctx context.Context, username string, contactID int64) (models.Contact, error)
	updateContactFunc  func(ctx context.Context, contact models.Contact) (models.Contact, error)
	deleteContactFunc  func(ctx context.Context, username string, contactID int64) error
	searchContactsFunc func(ctx context.Context, username string, search models.SearchContactRequest) ([]models.Contact, int64, error)
}

func (m *mockContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.createContactFunc(ctx, contact)
}

func (m *mockContactRepository) FindContact(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	return m.findContactFunc(ctx, username, contactID)
}

func (m *mockContactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	return m.updateContactFunc(ctx, contact)
}

func (m *mockContactRepository) DeleteContact(ctx context.Context, username string, contactID int64) error {
	return m.deleteContactFunc(ctx, username, contactID)
}

func (m *mockContactRepository) SearchContacts(ctx context.Context, username string, search models.SearchContactRequest) ([]models.Contact, int64, error) {
	return m.searchContactsFunc(ctx, username, search)
}

// mockAddressRepository is a function-field test double for store.AddressRepository.
type mockAddressRepository struct {
	createAddressFunc func(ctx context.Context, address models.Address) (models.Address, error)
	findAddressFunc   func(ctx context.Context, contactID, addressID int64) (models.Address, error)
	updateAddressFunc func(ctx context.Context, address models.Address) (models.Address, error)
	deleteAddressFunc func(ctx context.Context, contactID, addressID int64) error
	listAddressesFunc func(ctx context.Context, contactID int64) ([]models.Address, error)
}

func (m *mockAddressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	return m.createAddressFunc(ctx, address)
}

func (m *mockAddressRepository) FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	return m.findAddressFunc(ctx, contactID, addressID)
}

func (m *mockAddressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	return m.updateAddressFunc(ctx, address)
}

func (m *mockAddressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	return m.deleteAddressFunc(ctx, contactID, addressID)
}

func (m *mockAddressRepository) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	return m.listAddressesFunc(ctx, contactID)
}

func strPtr(s string) *string {
	return &s
}
