package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", registeredUser.Username).Msg("user registered")
	writeData(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}

	loggedInUser, err := h.services.UserService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", loggedInUser.Username).Msg("user logged in")
	writeData(w, loggedInUser, http.StatusOK)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	currentUser, err := h.services.UserService.Get(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, currentUser, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidRequestBody)
		return
	}

	updatedUser, err := h.services.UserService.Update(ctx, user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, updatedUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ok, err := h.services.UserService.Logout(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user logged out")
	writeData(w, ok, http.StatusOK)
}
