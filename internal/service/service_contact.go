package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// contactService is the concrete implementation of ContactService. Ownership
// scoping lives in the repository queries: every lookup carries the caller's
// username, so a contact belonging to someone else is indistinguishable from
// a missing one.
type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// Create stores a new contact for the calling user.
func (s *contactService) Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
	log := logger.FromContext(ctx)

	createRequest, err := validators.ValidateCreateContact(req)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid create contact request")
		return models.ContactResponse{}, err
	}

	createdContact, err := s.contactRepository.CreateContact(ctx, models.Contact{
		Username:  user.Username,
		FirstName: createRequest.FirstName,
		LastName:  createRequest.LastName,
		Email:     createRequest.Email,
		Phone:     createRequest.Phone,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact creation ended with error")
		return models.ContactResponse{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return models.ToContactResponse(createdContact), nil
}

// Get returns one of the caller's contacts by id.
func (s *contactService) Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error) {
	foundContact, err := s.Exists(ctx, user.Username, contactID)
	if err != nil {
		return models.ContactResponse{}, err
	}

	return models.ToContactResponse(foundContact), nil
}

// Update replaces the mutable fields of one of the caller's contacts.
// Fields absent from the request are set to NULL, matching full-replace
// semantics of PUT.
func (s *contactService) Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
	log := logger.FromContext(ctx)

	updateRequest, err := validators.ValidateUpdateContact(req)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid update contact request")
		return models.ContactResponse{}, err
	}

	foundContact, err := s.Exists(ctx, user.Username, updateRequest.ID)
	if err != nil {
		return models.ContactResponse{}, err
	}

	foundContact.FirstName = updateRequest.FirstName
	foundContact.LastName = updateRequest.LastName
	foundContact.Email = updateRequest.Email
	foundContact.Phone = updateRequest.Phone

	updatedContact, err := s.contactRepository.UpdateContact(ctx, foundContact)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", updateRequest.ID).Msg("contact update ended with error")
		return models.ContactResponse{}, fmt.Errorf("contact update ended with error: %w", err)
	}

	return models.ToContactResponse(updatedContact), nil
}

// Remove deletes one of the caller's contacts together with its addresses
// (the schema cascades the delete).
func (s *contactService) Remove(ctx context.Context, user models.User, contactID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if _, err := s.Exists(ctx, user.Username, contactID); err != nil {
		return false, err
	}

	if err := s.contactRepository.DeleteContact(ctx, user.Username, contactID); err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", contactID).Msg("contact deletion ended with error")
		return false, fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return true, nil
}

// Search returns a page of the caller's contacts matching the optional
// name, email, and phone substring filters. All filters are combined with
// AND; the name filter matches against either first or last name.
func (s *contactService) Search(ctx context.Context, user models.User, req models.SearchContactRequest) (models.ContactPageResponse, error) {
	log := logger.FromContext(ctx)

	searchRequest, err := validators.ValidateSearchContact(req)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid search contact request")
		return models.ContactPageResponse{}, err
	}

	foundContacts, total, err := s.contactRepository.SearchContacts(ctx, user.Username, searchRequest)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact search ended with error")
		return models.ContactPageResponse{}, fmt.Errorf("contact search ended with error: %w", err)
	}

	contactResponses := make([]models.ContactResponse, 0, len(foundContacts))
	for _, foundContact := range foundContacts {
		contactResponses = append(contactResponses, models.ToContactResponse(foundContact))
	}

	return models.ContactPageResponse{
		Data:   contactResponses,
		Paging: models.NewPaging(searchRequest.Page, searchRequest.Size, total),
	}, nil
}

// Exists returns the contact when it is present and owned by username, and
// store.ErrContactNotFound otherwise.
func (s *contactService) Exists(ctx context.Context, username string, contactID int64) (models.Contact, error) {
	foundContact, err := s.contactRepository.FindContact(ctx, username, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact search ended with error: %w", err)
	}

	return foundContact, nil
}
