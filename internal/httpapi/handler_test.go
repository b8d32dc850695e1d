// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/access"
	"github.com/jobdeck/jobdeck/internal/auth"
	authmem "github.com/jobdeck/jobdeck/internal/auth/memory"
	"github.com/jobdeck/jobdeck/internal/board"
	boardmem "github.com/jobdeck/jobdeck/internal/board/memory"
	"github.com/jobdeck/jobdeck/internal/httpapi"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "digest:" + password, nil
}

func (fakeHasher) Verify(password, digest string) (bool, error) {
	return digest == "digest:"+password, nil
}

func newAPI(t *testing.T) http.Handler {
	t.Helper()

	accountStore := authmem.NewAccountStore(fakeHasher{})
	accounts, err := auth.NewAccountService(
		accountStore,
		authmem.NewSessionStore(),
		auth.NewCounterIssuer(),
		fakeHasher{},
		nil,
		nil,
	)
	require.NoError(t, err)

	ledger, err := access.NewLedger(accountStore)
	require.NoError(t, err)

	companyRepo := boardmem.NewCompanyRepo()
	companies, err := board.NewCompanyService(companyRepo, accounts, ledger, nil)
	require.NoError(t, err)
	applications, err := board.NewApplicationService(boardmem.NewApplicationRepo(), companyRepo, accounts, ledger, nil)
	require.NoError(t, err)
	users, err := board.NewUserService(boardmem.NewUserRepo(), accounts, nil)
	require.NoError(t, err)

	handler, err := httpapi.NewHandler(accounts, companies, applications, users, nil)
	require.NoError(t, err)
	return handler.Routes()
}

// do performs a JSON request and decodes the JSON response body.
func do(t *testing.T, api http.Handler, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	return rec.Code, decoded
}

func register(t *testing.T, api http.Handler, username string) string {
	t.Helper()
	code, body := do(t, api, http.MethodPost, "/v1/accounts/register", "", map[string]any{
		"username": username,
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, code, "body: %v", body)
	token, ok := body["token"].(string)
	require.True(t, ok, "missing token in %v", body)
	return token
}

func companyPayload() map[string]any {
	return map[string]any{
		"name":              "Acme",
		"website":           "https://acme.example",
		"industry":          "Software Engineering",
		"organization_size": "1-10 employees",
	}
}

func applicationPayload() map[string]any {
	return map[string]any{
		"location":         "remote",
		"job_type":         "full-time",
		"experience_level": "senior",
		"requirements":     []string{"Go"},
		"benefits":         []string{"health insurance"},
	}
}

func TestAccounts_Register(t *testing.T) {
	api := newAPI(t)

	t.Run("success returns account and token", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/register", "", map[string]any{
			"username": "alice",
			"password": "hunter2",
		})
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "token_1", body["token"])

		account := body["account"].(map[string]any)
		assert.Equal(t, "alice", account["username"])
		assert.Equal(t, float64(1), account["id"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/register", "", map[string]any{
			"username": "alice",
			"password": "other",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "account already exists", body["status"])
	})

	t.Run("invalid username rejected before the service", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/register", "", map[string]any{
			"username": "1bad",
			"password": "hunter2",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request", body["status"])
	})

	t.Run("missing password", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/register", "", map[string]any{
			"username": "bob",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request", body["status"])
	})

	t.Run("unknown JSON field", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/register", "", map[string]any{
			"username": "bob",
			"password": "hunter2",
			"admin":    true,
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request", body["status"])
	})
}

func TestAccounts_LoginLogout(t *testing.T) {
	api := newAPI(t)
	token := register(t, api, "alice")

	t.Run("me resolves the session", func(t *testing.T) {
		code, body := do(t, api, http.MethodGet, "/v1/accounts/me", token, nil)
		assert.Equal(t, http.StatusOK, code)
		account := body["account"].(map[string]any)
		assert.Equal(t, "alice", account["username"])
	})

	t.Run("me without a token", func(t *testing.T) {
		code, body := do(t, api, http.MethodGet, "/v1/accounts/me", "", nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "user not logged in", body["status"])
	})

	t.Run("second login while logged in", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/login", "", map[string]any{
			"username": "alice",
			"password": "hunter2",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "user already logged in", body["status"])
	})

	t.Run("logout closes the session", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/logout", token, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body["status"])

		code, body = do(t, api, http.MethodPost, "/v1/accounts/logout", token, nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "user not logged in", body["status"])
	})

	t.Run("wrong password reports unknown account", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/login", "", map[string]any{
			"username": "alice",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "account does not exist", body["status"])
	})

	t.Run("login issues a fresh token", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/accounts/login", "", map[string]any{
			"username": "alice",
			"password": "hunter2",
		})
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "token_2", body["token"])
	})
}

func TestCompanies(t *testing.T) {
	api := newAPI(t)
	owner := register(t, api, "alice")
	other := register(t, api, "bob")

	t.Run("create requires a session", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/companies", "", companyPayload())
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "user not logged in", body["status"])
	})

	t.Run("create validates fields", func(t *testing.T) {
		payload := companyPayload()
		payload["name"] = ""
		code, body := do(t, api, http.MethodPost, "/v1/companies", owner, payload)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request", body["status"])
	})

	t.Run("owner lifecycle", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/companies", owner, companyPayload())
		require.Equal(t, http.StatusOK, code)
		company := body["company"].(map[string]any)
		assert.Equal(t, float64(1), company["id"])
		assert.Equal(t, "Acme", company["name"])

		code, body = do(t, api, http.MethodGet, "/v1/companies/1", other, nil)
		assert.Equal(t, http.StatusOK, code, "reads are open to any session")

		payload := companyPayload()
		payload["name"] = "Acme Rebranded"

		code, body = do(t, api, http.MethodPut, "/v1/companies/1", other, payload)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "company does not exist", body["status"], "non-owner mutation looks like a missing company")

		code, body = do(t, api, http.MethodPut, "/v1/companies/1", owner, payload)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Acme Rebranded", body["company"].(map[string]any)["name"])

		code, _ = do(t, api, http.MethodDelete, "/v1/companies/1", owner, nil)
		require.Equal(t, http.StatusOK, code)

		code, body = do(t, api, http.MethodGet, "/v1/companies/1", owner, nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "company does not exist", body["status"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		code, body := do(t, api, http.MethodGet, "/v1/companies/abc", owner, nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request", body["status"])
	})
}

func TestApplications(t *testing.T) {
	api := newAPI(t)
	owner := register(t, api, "alice")
	seeker := register(t, api, "bob")

	code, _ := do(t, api, http.MethodPost, "/v1/companies", owner, companyPayload())
	require.Equal(t, http.StatusOK, code)

	t.Run("create under a non-owned company", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/companies/1/applications", seeker, applicationPayload())
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "company does not exist", body["status"])
	})

	t.Run("create validates enums", func(t *testing.T) {
		payload := applicationPayload()
		payload["location"] = "hybrid"
		code, body := do(t, api, http.MethodPost, "/v1/companies/1/applications", owner, payload)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request", body["status"])
	})

	t.Run("lifecycle with views", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/companies/1/applications", owner, applicationPayload())
		require.Equal(t, http.StatusOK, code)
		application := body["application"].(map[string]any)
		assert.Equal(t, float64(1), application["id"])
		assert.Equal(t, float64(1), application["company_id"])
		assert.Equal(t, float64(0), application["views"])

		// The posting shows up on the company.
		code, body = do(t, api, http.MethodGet, "/v1/companies/1", owner, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body["company"].(map[string]any)["application_ids"], float64(1))

		// Any logged-in seeker records views.
		code, _ = do(t, api, http.MethodPost, "/v1/applications/1/views", seeker, nil)
		require.Equal(t, http.StatusOK, code)

		code, body = do(t, api, http.MethodGet, "/v1/applications/1", seeker, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), body["application"].(map[string]any)["views"])

		// Non-owner mutation looks like a missing posting.
		code, body = do(t, api, http.MethodDelete, "/v1/applications/1", seeker, nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "application does not exist", body["status"])

		code, _ = do(t, api, http.MethodDelete, "/v1/applications/1", owner, nil)
		require.Equal(t, http.StatusOK, code)
	})
}

func TestUsers(t *testing.T) {
	api := newAPI(t)
	alice := register(t, api, "alice")
	bob := register(t, api, "bob")

	t.Run("create and read profiles", func(t *testing.T) {
		code, body := do(t, api, http.MethodPost, "/v1/users", alice, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "alice", body["user"].(map[string]any)["username"])

		code, body = do(t, api, http.MethodGet, "/v1/users/alice", bob, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "alice", body["user"].(map[string]any)["username"])
	})

	t.Run("missing profile is 404", func(t *testing.T) {
		code, body := do(t, api, http.MethodGet, "/v1/users/nobody", alice, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "user not found", body["status"])
	})

	t.Run("update own profile", func(t *testing.T) {
		code, body := do(t, api, http.MethodPut, "/v1/users/me", alice, map[string]any{
			"skills": []map[string]any{{"name": "Go", "description": "five years"}},
			"preference": map[string]any{
				"job_locations": []string{"remote"},
				"job_types":     []string{"full-time"},
			},
		})
		require.Equal(t, http.StatusOK, code)

		user := body["user"].(map[string]any)
		skills := user["skills"].([]any)
		require.Len(t, skills, 1)
		assert.Equal(t, "Go", skills[0].(map[string]any)["name"])
		preference := user["preference"].(map[string]any)
		assert.Contains(t, preference["job_locations"], "remote")
	})
}
