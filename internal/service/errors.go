// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password. The two causes deliberately share one
	// message so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("username or password is invalid")
)
