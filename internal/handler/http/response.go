// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// writeData sends a successful response wrapped in the {"data": ...} envelope.
func writeData(w http.ResponseWriter, data any, statusCode int) {
	_, _ = utils.WriteJSON(w, models.DataResponse{Data: data}, statusCode)
}

// writeError translates err into the {"errors": ...} envelope. Validation
// failures carry the full violation list; everything else goes through the
// sentinel-to-status map.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Msg("request failed validation")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: validationErr.Violations}, http.StatusBadRequest)
		return
	}

	status, message := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request ended with unexpected error")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: message}, status)
}
