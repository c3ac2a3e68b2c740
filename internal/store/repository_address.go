package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository]. Every query is scoped to the parent contact ID; the
// service layer has already verified that the contact belongs to the caller.
type addressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAddress persists a new address under address.ContactID and returns
// the stored row with its server-assigned ID.
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	var created models.Address
	row := r.db.QueryRowContext(ctx, createAddress,
		address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode)
	if err := scanAddress(row, &created); err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Int64("contact_id", address.ContactID).Msg("error creating address")
		return models.Address{}, classifyError(err)
	}

	return created, nil
}

// FindAddress retrieves the address with the given ID under the given parent
// contact. Returns [ErrAddressNotFound] when no such record exists under
// that specific contact.
func (r *addressRepository) FindAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	var found models.Address
	row := r.db.QueryRowContext(ctx, findAddress, addressID, contactID)
	if err := scanAddress(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}

		log.Err(err).Str("func", "*addressRepository.FindAddress").Int64("address_id", addressID).Msg("error finding address")
		return models.Address{}, classifyError(err)
	}

	return found, nil
}

// UpdateAddress overwrites the public fields of an address under its parent
// contact and returns the stored row. Returns [ErrAddressNotFound] when the
// ID does not exist under address.ContactID.
func (r *addressRepository) UpdateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	var updated models.Address
	row := r.db.QueryRowContext(ctx, updateAddress,
		address.ID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode)
	if err := scanAddress(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}

		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Int64("address_id", address.ID).Msg("error updating address")
		return models.Address{}, classifyError(err)
	}

	return updated, nil
}

// DeleteAddress removes an address under its parent contact. A concurrent
// delete of the same row reports [ErrAddressNotFound] via the affected-rows
// count.
func (r *addressRepository) DeleteAddress(ctx context.Context, contactID, addressID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAddress, addressID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Int64("address_id", addressID).Msg("error deleting address")
		return classifyError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// ListAddresses returns every address under the given contact in storage
// (ID) order. Returns an empty slice when the contact has no addresses.
func (r *addressRepository) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAddresses, contactID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddresses").Int64("contact_id", contactID).Msg("failed to execute list query")
		return nil, classifyError(err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0, 8)
	for rows.Next() {
		var address models.Address
		if err := scanAddress(rows, &address); err != nil {
			log.Err(err).Str("func", "*addressRepository.ListAddresses").Msg("failed to scan address row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddresses").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}

func scanAddress(row rowScanner, address *models.Address) error {
	return row.Scan(
		&address.ID,
		&address.ContactID,
		&address.Street,
		&address.City,
		&address.Province,
		&address.Country,
		&address.PostalCode,
	)
}
