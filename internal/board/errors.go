// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package board

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when creating a record that is already present.
var ErrAlreadyExists = errors.New("already exists")
