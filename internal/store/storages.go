package store

import "github.com/MKhiriev/go-contact-book/internal/logger"

// Storages aggregates all repositories backed by one database connection.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	AddressRepository AddressRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
		AddressRepository: NewAddressRepository(db, logger),
	}
}
