package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}
	req.ContactID = contactID

	createdAddress, err := h.services.AddressService.Create(ctx, user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, createdAddress, http.StatusOK)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, addressID, err := addressPathIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundAddress, err := h.services.AddressService.Get(ctx, user, contactID, addressID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, foundAddress, http.StatusOK)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, addressID, err := addressPathIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}
	req.ID = addressID
	req.ContactID = contactID

	updatedAddress, err := h.services.AddressService.Update(ctx, user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, updatedAddress, http.StatusOK)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, addressID, err := addressPathIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	removed, err := h.services.AddressService.Remove(ctx, user, contactID, addressID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, removed, http.StatusOK)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundAddresses, err := h.services.AddressService.List(ctx, user, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, foundAddresses, http.StatusOK)
}

func addressPathIDs(r *http.Request) (contactID, addressID int64, err error) {
	contactID, err = pathID(r, "contactID")
	if err != nil {
		return 0, 0, err
	}

	addressID, err = pathID(r, "addressID")
	if err != nil {
		return 0, 0, err
	}

	return contactID, addressID, nil
}
