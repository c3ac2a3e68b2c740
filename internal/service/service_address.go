package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// addressService is the concrete implementation of AddressService. Every
// operation first resolves the parent contact through the contact service,
// which enforces that the contact belongs to the caller; only then is the
// address repository touched.
type addressService struct {
	addressRepository store.AddressRepository
	contactService    ContactService
	logger            *logger.Logger
}

func NewAddressService(addressRepository store.AddressRepository, contactService ContactService, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		contactService:    contactService,
		logger:            logger,
	}
}

// Create stores a new address under one of the caller's contacts.
func (s *addressService) Create(ctx context.Context, user models.User, req models.CreateAddressRequest) (models.AddressResponse, error) {
	log := logger.FromContext(ctx)

	createRequest, err := validators.ValidateCreateAddress(req)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid create address request")
		return models.AddressResponse{}, err
	}

	if _, err := s.contactService.Exists(ctx, user.Username, createRequest.ContactID); err != nil {
		return models.AddressResponse{}, err
	}

	createdAddress, err := s.addressRepository.CreateAddress(ctx, models.Address{
		ContactID:  createRequest.ContactID,
		Street:     createRequest.Street,
		City:       createRequest.City,
		Province:   createRequest.Province,
		Country:    createRequest.Country,
		PostalCode: createRequest.PostalCode,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", createRequest.ContactID).Msg("address creation ended with error")
		return models.AddressResponse{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return models.ToAddressResponse(createdAddress), nil
}

// Get returns one address of one of the caller's contacts.
func (s *addressService) Get(ctx context.Context, user models.User, contactID, addressID int64) (models.AddressResponse, error) {
	foundAddress, err := s.findAddress(ctx, user, contactID, addressID)
	if err != nil {
		return models.AddressResponse{}, err
	}

	return models.ToAddressResponse(foundAddress), nil
}

// Update replaces the mutable fields of an address. Optional fields absent
// from the request are set to NULL, matching full-replace semantics of PUT.
func (s *addressService) Update(ctx context.Context, user models.User, req models.UpdateAddressRequest) (models.AddressResponse, error) {
	log := logger.FromContext(ctx)

	updateRequest, err := validators.ValidateUpdateAddress(req)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid update address request")
		return models.AddressResponse{}, err
	}

	foundAddress, err := s.findAddress(ctx, user, updateRequest.ContactID, updateRequest.ID)
	if err != nil {
		return models.AddressResponse{}, err
	}

	foundAddress.Street = updateRequest.Street
	foundAddress.City = updateRequest.City
	foundAddress.Province = updateRequest.Province
	foundAddress.Country = updateRequest.Country
	foundAddress.PostalCode = updateRequest.PostalCode

	updatedAddress, err := s.addressRepository.UpdateAddress(ctx, foundAddress)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("address_id", updateRequest.ID).Msg("address update ended with error")
		return models.AddressResponse{}, fmt.Errorf("address update ended with error: %w", err)
	}

	return models.ToAddressResponse(updatedAddress), nil
}

// Remove deletes one address of one of the caller's contacts.
func (s *addressService) Remove(ctx context.Context, user models.User, contactID, addressID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if _, err := s.findAddress(ctx, user, contactID, addressID); err != nil {
		return false, err
	}

	if err := s.addressRepository.DeleteAddress(ctx, contactID, addressID); err != nil {
		log.Err(err).Str("username", user.Username).Int64("address_id", addressID).Msg("address deletion ended with error")
		return false, fmt.Errorf("address deletion ended with error: %w", err)
	}

	return true, nil
}

// List returns every address of one of the caller's contacts, ordered by id.
func (s *addressService) List(ctx context.Context, user models.User, contactID int64) ([]models.AddressResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := s.contactService.Exists(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	foundAddresses, err := s.addressRepository.ListAddresses(ctx, contactID)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", contactID).Msg("address listing ended with error")
		return nil, fmt.Errorf("address listing ended with error: %w", err)
	}

	addressResponses := make([]models.AddressResponse, 0, len(foundAddresses))
	for _, foundAddress := range foundAddresses {
		addressResponses = append(addressResponses, models.ToAddressResponse(foundAddress))
	}

	return addressResponses, nil
}

// findAddress runs the two-level ownership chain: the parent contact must
// belong to the caller, then the address must belong to that contact.
func (s *addressService) findAddress(ctx context.Context, user models.User, contactID, addressID int64) (models.Address, error) {
	if _, err := s.contactService.Exists(ctx, user.Username, contactID); err != nil {
		return models.Address{}, err
	}

	foundAddress, err := s.addressRepository.FindAddress(ctx, contactID, addressID)
	if err != nil {
		return models.Address{}, fmt.Errorf("address search ended with error: %w", err)
	}

	return foundAddress, nil
}
