package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

const (
	defaultSearchPage = 1
	defaultSearchSize = 10
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}

	createdContact, err := h.services.ContactService.Create(ctx, user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, createdContact, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
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

	foundContact, err := h.services.ContactService.Get(ctx, user, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, foundContact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}
	req.ID = contactID

	updatedContact, err := h.services.ContactService.Update(ctx, user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, updatedContact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
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

	removed, err := h.services.ContactService.Remove(ctx, user, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, removed, http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	req := searchRequestFromQuery(r)

	page, err := h.services.ContactService.Search(ctx, user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// the search result carries its own paging block next to data, so it
	// is written as-is instead of through the plain data envelope
	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

// searchRequestFromQuery reads the optional filter and paging parameters of
// a contact search. Missing paging values fall back to the defaults; values
// that fail to parse are passed through as zero and rejected by validation.
func searchRequestFromQuery(r *http.Request) models.SearchContactRequest {
	query := r.URL.Query()

	req := models.SearchContactRequest{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
		Page:  defaultSearchPage,
		Size:  defaultSearchSize,
	}

	if pageParam := query.Get("page"); pageParam != "" {
		req.Page, _ = strconv.Atoi(pageParam)
	}
	if sizeParam := query.Get("size"); sizeParam != "" {
		req.Size, _ = strconv.Atoi(sizeParam)
	}

	return req
}

// pathID parses a numeric path segment registered under name in the route
// pattern.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errInvalidPathParameter
	}

	return id, nil
}
