package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case; unset methods fail the
// lookup so the auth middleware rejects by default.
type mockUserService struct {
	registerFn    func(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)
	loginFn       func(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error)
	getFn         func(ctx context.Context, user models.User) (models.UserResponse, error)
	updateFn      func(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error)
	logoutFn      func(ctx context.Context, user models.User) (bool, error)
	findByTokenFn func(ctx context.Context, token string) (models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockUserService) Get(ctx context.Context, user models.User) (models.UserResponse, error) {
	if m.getFn == nil {
		return models.UserResponse{Username: user.Username, Name: user.Name}, nil
	}
	return m.getFn(ctx, user)
}

func (m *mockUserService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error) {
	return m.updateFn(ctx, user, req)
}

func (m *mockUserService) Logout(ctx context.Context, user models.User) (bool, error) {
	return m.logoutFn(ctx, user)
}

func (m *mockUserService) FindByToken(ctx context.Context, token string) (models.User, error) {
	if m.findByTokenFn == nil {
		return models.User{}, store.ErrNoUserWasFound
	}
	return m.findByTokenFn(ctx, token)
}

// mockContactService implements service.ContactService for unit tests.
type mockContactService struct {
	createFn func(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error)
	getFn    func(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error)
	updateFn func(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error)
	removeFn func(ctx context.Context, user models.User, contactID int64) (bool, error)
	searchFn func(ctx context.Context, user models.User, req models.SearchContactRequest) (models.ContactPageResponse, error)
	existsFn func(ctx context.Context, username string, contactID int64) (models.Contact, error)
}

func (m *mockContactService) Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
	return m.createFn(ctx, user, req)
}

func (m *mockContactService) Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error) {
	return m.getFn(ctx, user, contactID)
}

func (m *mockContactService) Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
	return m.updateFn(ctx, user, req)
}

func (m *mockContactService) Remove(ctx context.Context, user models.User, contactID int64) (bool, error) {
	return m.removeFn(ctx, user, contactID)
}

func (m *mockContactService) Search(ctx context.Context, user models.User, req models.SearchContactRequest) (models.ContactPageResponse, error) {
	return m.searchFn(ctx, user, req)
}

func (m *mockContactService) Exists(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	return m.existsFn(ctx, username, contactID)
}

// mockAddressService implements service.AddressService for unit tests.
type mockAddressService struct {
	createFn func(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error)
	getFn    func(ctx context.Context, user models.User, contactID, addressID int64) (models.AddressResponse, error)
	updateFn func(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error)
	removeFn func(ctx context.Context, user models.User, contactID, addressID int64) (bool, error)
	listFn   func(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error)
}

func (m *mockAddressService) Create(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error) {
	return m.createFn(ctx, user, req)
}

func (m *mockAddressService) Get(ctx context.Context, user models.User, contactID, addressID int64) (models.AddressResponse, error) {
	return m.getFn(ctx, user, contactID, addressID)
}

func (m *mockAddressService) Update(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error) {
	return m.updateFn(ctx, user, req)
}

func (m *mockAddressService) Remove(ctx context.Context, user models.User, contactID, addressID int64) (bool, error) {
	return m.removeFn(ctx, user, contactID, addressID)
}

func (m *mockAddressService) List(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error) {
	return m.listFn(ctx, user, contactID)
}

// mockHealthService implements service.HealthService for unit tests.
type mockHealthService struct {
	pingFn func(ctx context.Context) error
}

func (m *mockHealthService) Ping(ctx context.Context) error {
	if m.pingFn == nil {
		return nil
	}
	return m.pingFn(ctx)
}

// newTestHandler builds a Handler over the given service mocks. Nil mocks
// are replaced with empty ones so route registration never dereferences nil.
func newTestHandler(t *testing.T, users *mockUserService, contacts *mockContactService, addresses *mockAddressService) *Handler {
	t.Helper()

	if users == nil {
		users = &mockUserService{}
	}
	if contacts == nil {
		contacts = &mockContactService{}
	}
	if addresses == nil {
		addresses = &mockAddressService{}
	}

	return NewHandler(&service.Services{
		UserService:    users,
		ContactService: contacts,
		AddressService: addresses,
		HealthService:  &mockHealthService{},
	}, logger.Nop())
}

func strPtr(s string) *string {
	return &s
}
