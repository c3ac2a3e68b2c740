package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Every query carries the owning username in its WHERE
// clause, so an unowned record and a missing record produce the same
// [ErrContactNotFound].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a new contact owned by contact.Username and returns
// the stored row with its server-assigned ID.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var created models.Contact
	row := r.db.QueryRowContext(ctx, createContact,
		contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone)
	if err := scanContact(row, &created); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Str("username", contact.Username).Msg("error creating contact")
		return models.Contact{}, classifyError(err)
	}

	return created, nil
}

// FindContact retrieves the contact with the given ID owned by username.
// Returns [ErrContactNotFound] when no such owned record exists.
func (r *contactRepository) FindContact(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var found models.Contact
	row := r.db.QueryRowContext(ctx, findContact, contactID, username)
	if err := scanContact(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.FindContact").Int64("contact_id", contactID).Msg("error finding contact")
		return models.Contact{}, classifyError(err)
	}

	return found, nil
}

// UpdateContact overwrites the public fields of an owned contact and returns
// the stored row. Returns [ErrContactNotFound] when the ID does not exist
// under contact.Username.
func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var updated models.Contact
	row := r.db.QueryRowContext(ctx, updateContact,
		contact.ID, contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone)
	if err := scanContact(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.UpdateContact").Int64("contact_id", contact.ID).Msg("error updating contact")
		return models.Contact{}, classifyError(err)
	}

	return updated, nil
}

// DeleteContact removes an owned contact. Deleting a record that vanished
// between check and delete reports [ErrContactNotFound] via the affected-rows
// count; the database resolves the race.
func (r *contactRepository) DeleteContact(ctx context.Context, username string, contactID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, contactID, username)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Int64("contact_id", contactID).Msg("error deleting contact")
		return classifyError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts returns one page of the owner's contacts matching the
// supplied substring filters, in ID order, plus the total match count under
// the same filters without pagination.
func (r *contactRepository) SearchContacts(ctx context.Context, username string, search models.SearchContactRequest) ([]models.Contact, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchContactsQuery(username, search)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to build search query")
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Str("username", username).Msg("failed to execute search query")
		return nil, 0, classifyError(err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, search.Size)
	for rows.Next() {
		var contact models.Contact
		if err := scanContact(rows, &contact); err != nil {
			log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to scan contact row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	countQuery, countArgs, err := buildCountContactsQuery(username, search)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to build count query")
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("failed to count search matches")
		return nil, 0, classifyError(err)
	}

	return contacts, total, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner, contact *models.Contact) error {
	return row.Scan(
		&contact.ID,
		&contact.Username,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Phone,
	)
}
