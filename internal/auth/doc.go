// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

// Package auth implements the account session and authorization core:
// credential storage, session stores (opaque and signed token
// strategies), token issuance, the guard chains that gate each account
// flow, and the account service that orchestrates them.
package auth
