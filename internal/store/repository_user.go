package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, credential lookup, and session token lookup
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation of the account via a RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → classified (storage unavailable or
//     wrapped as an unexpected DB error).
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Password, user.Name, user.Token)
	if err := row.Scan(&created.Username, &created.Password, &created.Name, &created.Token); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, classifyError(err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoUserWasFound].
//   - Any other driver-level error → classified.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByToken retrieves the account holding the given session token.
// The token column is nullable; logged-out users can never match because
// SQL NULL never equals a supplied value.
//
// Error handling mirrors [FindUserByUsername].
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return r.findUser(ctx, findUserByToken, token)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&found.Username, &found.Password, &found.Name, &found.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, classifyError(err)
	}

	return found, nil
}

// UpdateUser overwrites the mutable columns (password, name, token) of the
// account identified by user.Username and returns the stored row.
//
// Error handling:
//   - sql.ErrNoRows (no such username) → [ErrNoUserWasFound].
//   - Any other driver-level error → classified.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	row := r.db.QueryRowContext(ctx, updateUser, user.Username, user.Password, user.Name, user.Token)
	if err := row.Scan(&updated.Username, &updated.Password, &updated.Name, &updated.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("username", user.Username).Msg("error updating user")
		return models.User{}, classifyError(err)
	}

	return updated, nil
}
