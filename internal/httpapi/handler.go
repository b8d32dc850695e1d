// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

// Package httpapi exposes the account and board services over JSON HTTP.
// Every response code comes from the total Status→HTTP mapping; the
// handlers never invent codes for service outcomes.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/oops"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/board"
)

// Handler serves the jobdeck HTTP API.
type Handler struct {
	accounts     *auth.AccountService
	companies    *board.CompanyService
	applications *board.ApplicationService
	users        *board.UserService
	logger       *slog.Logger
}

// NewHandler creates a Handler over the services.
func NewHandler(accounts *auth.AccountService, companies *board.CompanyService, applications *board.ApplicationService, users *board.UserService, logger *slog.Logger) (*Handler, error) {
	if accounts == nil {
		return nil, oops.Code("HTTPAPI_NIL_DEPENDENCY").Errorf("account service is required")
	}
	if companies == nil {
		return nil, oops.Code("HTTPAPI_NIL_DEPENDENCY").Errorf("company service is required")
	}
	if applications == nil {
		return nil, oops.Code("HTTPAPI_NIL_DEPENDENCY").Errorf("application service is required")
	}
	if users == nil {
		return nil, oops.Code("HTTPAPI_NIL_DEPENDENCY").Errorf("user service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		accounts:     accounts,
		companies:    companies,
		applications: applications,
		users:        users,
		logger:       logger,
	}, nil
}

// Routes returns the API route multiplexer.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/accounts/register", h.handleRegister)
	mux.HandleFunc("POST /v1/accounts/login", h.handleLogin)
	mux.HandleFunc("POST /v1/accounts/logout", h.handleLogout)
	mux.HandleFunc("GET /v1/accounts/me", h.handleMe)

	mux.HandleFunc("POST /v1/companies", h.handleCompanyCreate)
	mux.HandleFunc("GET /v1/companies/{id}", h.handleCompanyGet)
	mux.HandleFunc("PUT /v1/companies/{id}", h.handleCompanyUpdate)
	mux.HandleFunc("DELETE /v1/companies/{id}", h.handleCompanyDelete)
	mux.HandleFunc("POST /v1/companies/{id}/applications", h.handleApplicationCreate)

	mux.HandleFunc("GET /v1/applications/{id}", h.handleApplicationGet)
	mux.HandleFunc("PUT /v1/applications/{id}", h.handleApplicationUpdate)
	mux.HandleFunc("DELETE /v1/applications/{id}", h.handleApplicationDelete)
	mux.HandleFunc("POST /v1/applications/{id}/views", h.handleApplicationInteract)

	mux.HandleFunc("POST /v1/users", h.handleUserCreate)
	mux.HandleFunc("GET /v1/users/{username}", h.handleUserGet)
	mux.HandleFunc("PUT /v1/users/me", h.handleUserUpdate)

	return mux
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := auth.ValidateUsername(req.Username); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Password == "" {
		writeInvalid(w, "password is required")
		return
	}

	st, account, token := h.accounts.Register(r.Context(), req.Username, req.Password)
	body := map[string]any{}
	if account != nil {
		body["account"] = accountView(account)
	}
	if token != "" {
		body["token"] = token
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeInvalid(w, "username and password are required")
		return
	}

	st, token := h.accounts.Login(r.Context(), req.Username, req.Password)
	body := map[string]any{}
	if token != "" {
		body["token"] = token
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	st := h.accounts.Logout(r.Context(), bearerToken(r))
	writeStatus(w, st, map[string]any{})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	st, account := h.accounts.CurrentAccount(r.Context(), bearerToken(r))
	body := map[string]any{}
	if account != nil {
		body["account"] = accountView(account)
	}
	writeStatus(w, st, body)
}

type companyRequest struct {
	Name             string `json:"name"`
	Website          string `json:"website"`
	Industry         string `json:"industry"`
	OrganizationSize string `json:"organization_size"`
}

func (r companyRequest) fields() board.CompanyFields {
	return board.CompanyFields{
		Name:             r.Name,
		Website:          r.Website,
		Industry:         board.Industry(r.Industry),
		OrganizationSize: board.OrganizationSize(r.OrganizationSize),
	}
}

func (h *Handler) handleCompanyCreate(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := board.ValidateCompany(req.Name, req.Website); err != nil {
		writeInvalid(w, err.Error())
		return
	}

	st, company := h.companies.Create(r.Context(), bearerToken(r), req.fields())
	body := map[string]any{}
	if company != nil {
		body["company"] = companyView(company)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleCompanyGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	st, company := h.companies.Get(r.Context(), bearerToken(r), id)
	body := map[string]any{}
	if company != nil {
		body["company"] = companyView(company)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleCompanyUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req companyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := board.ValidateCompany(req.Name, req.Website); err != nil {
		writeInvalid(w, err.Error())
		return
	}

	st, company := h.companies.Update(r.Context(), bearerToken(r), id, req.fields())
	body := map[string]any{}
	if company != nil {
		body["company"] = companyView(company)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleCompanyDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	st := h.companies.Delete(r.Context(), bearerToken(r), id)
	writeStatus(w, st, map[string]any{})
}

type applicationRequest struct {
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits"`
}

func (r applicationRequest) fields() board.ApplicationFields {
	return board.ApplicationFields{
		Location:        board.JobLocation(r.Location),
		JobType:         board.JobType(r.JobType),
		ExperienceLevel: board.ExperienceLevel(r.ExperienceLevel),
		Requirements:    r.Requirements,
		Benefits:        r.Benefits,
	}
}

func (h *Handler) handleApplicationCreate(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req applicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	fields := req.fields()
	if err := fields.Validate(); err != nil {
		writeInvalid(w, err.Error())
		return
	}

	st, application := h.applications.Create(r.Context(), bearerToken(r), companyID, fields)
	body := map[string]any{}
	if application != nil {
		body["application"] = applicationView(application)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleApplicationGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	st, application := h.applications.Get(r.Context(), bearerToken(r), id)
	body := map[string]any{}
	if application != nil {
		body["application"] = applicationView(application)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleApplicationUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req applicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	fields := req.fields()
	if err := fields.Validate(); err != nil {
		writeInvalid(w, err.Error())
		return
	}

	st, application := h.applications.Update(r.Context(), bearerToken(r), id, fields)
	body := map[string]any{}
	if application != nil {
		body["application"] = applicationView(application)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleApplicationDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	st := h.applications.Delete(r.Context(), bearerToken(r), id)
	writeStatus(w, st, map[string]any{})
}

func (h *Handler) handleApplicationInteract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	st := h.applications.Interact(r.Context(), bearerToken(r), id)
	writeStatus(w, st, map[string]any{})
}

type userRequest struct {
	Education  []profileEntry `json:"education"`
	Skills     []profileEntry `json:"skills"`
	Experience []profileEntry `json:"experience"`
	Preference preferenceView `json:"preference"`
}

func (h *Handler) handleUserCreate(w http.ResponseWriter, r *http.Request) {
	st, user := h.users.Create(r.Context(), bearerToken(r))
	body := map[string]any{}
	if user != nil {
		body["user"] = userView(user)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleUserGet(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	st, user := h.users.Get(r.Context(), bearerToken(r), username)
	body := map[string]any{}
	if user != nil {
		body["user"] = userView(user)
	}
	writeStatus(w, st, body)
}

func (h *Handler) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	st, user := h.users.Update(r.Context(), bearerToken(r), req.fields())
	body := map[string]any{}
	if user != nil {
		body["user"] = userView(user)
	}
	writeStatus(w, st, body)
}

// bearerToken extracts the token from an Authorization: Bearer header.
// Returns "" when absent or malformed; the services reject empty tokens.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// pathID parses the named numeric path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil {
		writeInvalid(w, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeInvalid(w, "invalid JSON payload")
		return false
	}
	return true
}

// writeStatus emits the mapped HTTP code with the status string and payload.
func writeStatus(w http.ResponseWriter, st auth.Status, body map[string]any) {
	if body == nil {
		body = map[string]any{}
	}
	body["status"] = st.String()
	writeJSON(w, st.HTTPStatus(), body)
}

// writeInvalid reports a malformed request, before any service runs.
func writeInvalid(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"status": "invalid request",
		"error":  msg,
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	//nolint:errcheck // response write error means the client went away
	json.NewEncoder(w).Encode(body)
}
