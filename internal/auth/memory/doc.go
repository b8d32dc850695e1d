// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

// Package memory provides the in-memory credential and session stores.
// Each store serializes its own mutations with a single mutex held only
// for the duration of the map access; no operation blocks or performs I/O.
package memory
