// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DataResponse is the uniform success envelope: every 200 response body is
// {"data": ...} regardless of the payload type.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the uniform failure envelope. Errors is a plain message
// string for most failures and a list of field violations for validation
// failures.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

// ContactPageResponse is the body of GET /api/contacts: one page of search
// results plus the paging block.
type ContactPageResponse struct {
	Data   []ContactResponse `json:"data"`
	Paging Paging            `json:"paging"`
}
