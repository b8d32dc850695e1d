// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when creating an entity that is already present.
var ErrAlreadyExists = errors.New("already exists")

// ErrTokenExpired is returned by signed-token verification when the
// embedded expiry has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid is returned when a token fails signature or format checks.
var ErrTokenInvalid = errors.New("token invalid")
