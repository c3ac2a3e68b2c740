package service

import (
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
)

type Services struct {
	UserService    UserService
	ContactService ContactService
	AddressService AddressService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, db *store.DB, cfg config.App, logger *logger.Logger) *Services {
	contactService := NewContactService(storages.ContactRepository, logger)

	return &Services{
		UserService:    NewUserService(storages.UserRepository, cfg, logger),
		ContactService: contactService,
		AddressService: NewAddressService(storages.AddressRepository, contactService, logger),
		HealthService:  NewHealthService(db, logger),
	}
}
