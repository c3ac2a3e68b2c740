package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// userService is the concrete implementation of UserService.
// It handles registration, credential verification, and the opaque session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type userService struct {
	// userRepository is the data-access layer used to create, look up, and
	// update accounts.
	userRepository store.UserRepository

	// tokens issues the opaque session credentials stored on the account.
	tokens *utils.TokenGenerator

	// bcryptCost is the work factor applied when hashing passwords.
	// Zero selects the bcrypt library default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		tokens:         utils.NewTokenGenerator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password is stored only as a salted bcrypt hash, and a fresh session
// token is issued immediately so the new account is logged in.
//
// Returns the public account shape (including the token) or:
//   - a *validators.ValidationError if any field rule is unmet.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	registerRequest, err := validators.ValidateRegisterUser(req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid register request")
		return models.UserResponse{}, err
	}

	hashedPassword, err := utils.HashPassword(registerRequest.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.UserResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	token := s.tokens.Generate()
	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Username: registerRequest.Username,
		Name:     registerRequest.Name,
		Password: hashedPassword,
		Token:    &token,
	})
	if err != nil {
		log.Err(err).Str("username", registerRequest.Username).Msg("user creation ended with error")
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.UserResponse{
		Username: createdUser.Username,
		Name:     createdUser.Name,
		Token:    token,
	}, nil
}

// Login authenticates an existing user and rotates their session token.
//
// An unknown username and a wrong password both surface as
// ErrInvalidCredentials with one shared message, so the response never
// reveals which half of the credential pair failed.
func (s *userService) Login(ctx context.Context, req models.LoginUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	loginRequest, err := validators.ValidateLoginUser(req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid login request")
		return models.UserResponse{}, err
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, loginRequest.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", loginRequest.Username).Msg("login attempt for unknown username")
			return models.UserResponse{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", loginRequest.Username).Msg("user search by username failed")
		return models.UserResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, loginRequest.Password) {
		log.Debug().Str("username", loginRequest.Username).Msg("login attempt with wrong password")
		return models.UserResponse{}, ErrInvalidCredentials
	}

	token := s.tokens.Generate()
	foundUser.Token = &token

	updatedUser, err := s.userRepository.UpdateUser(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("username", loginRequest.Username).Msg("token rotation failed")
		return models.UserResponse{}, fmt.Errorf("token rotation failed: %w", err)
	}

	return models.UserResponse{
		Username: updatedUser.Username,
		Name:     updatedUser.Name,
		Token:    token,
	}, nil
}

// Get returns the public shape of the already-resolved caller. No
// persistence call is needed; the auth middleware has loaded the record.
func (s *userService) Get(ctx context.Context, user models.User) (models.UserResponse, error) {
	return models.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// Update applies the supplied subset of {name, password} to the caller's
// account. A request carrying neither field fails validation.
func (s *userService) Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	updateRequest, err := validators.ValidateUpdateUser(req)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid update request")
		return models.UserResponse{}, err
	}

	if updateRequest.Name != nil {
		user.Name = *updateRequest.Name
	}

	if updateRequest.Password != nil {
		hashedPassword, err := utils.HashPassword(*updateRequest.Password, s.bcryptCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.UserResponse{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.Password = hashedPassword
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user update ended with error")
		return models.UserResponse{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return models.UserResponse{
		Username: updatedUser.Username,
		Name:     updatedUser.Name,
	}, nil
}

// Logout clears the caller's session token. Subsequent requests carrying
// the old token fail authentication.
func (s *userService) Logout(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	user.Token = nil
	if _, err := s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("logout ended with error")
		return false, fmt.Errorf("logout ended with error: %w", err)
	}

	return true, nil
}

// FindByToken resolves an opaque bearer token to its account by equality
// lookup. A token cleared by logout or replaced by a newer login no longer
// matches any record.
func (s *userService) FindByToken(ctx context.Context, token string) (models.User, error) {
	foundUser, err := s.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return foundUser, nil
}
