// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import "net/http"

// Status is the closed result set returned by every service operation.
// The transport layer maps each status to exactly one HTTP code via
// HTTPStatus; the mapping is total and part of the boundary contract.
type Status int

const (
	StatusOK Status = iota
	StatusAccountAlreadyExists
	StatusAccountRegisterError
	StatusAccountDoesNotExist
	StatusUserAlreadyLoggedIn
	StatusUserNotLoggedIn
	StatusUserSetupError
	StatusUserNotFound
	StatusApplicationCreateError
	StatusApplicationUpdateError
	StatusApplicationDoesNotExist
	StatusApplicationInteractionError
	StatusApplicationDeleteError
	StatusErrorCreatingCompany
	StatusCompanyDoesNotExist
	StatusErrorDeletingCompany

	// statusCount marks the end of the enumeration for totality checks.
	statusCount
)

// Statuses returns every defined status, in declaration order.
func Statuses() []Status {
	all := make([]Status, 0, int(statusCount))
	for s := StatusOK; s < statusCount; s++ {
		all = append(all, s)
	}
	return all
}

var statusNames = map[Status]string{
	StatusOK:                          "ok",
	StatusAccountAlreadyExists:        "account already exists",
	StatusAccountRegisterError:        "account registration error",
	StatusAccountDoesNotExist:         "account does not exist",
	StatusUserAlreadyLoggedIn:         "user already logged in",
	StatusUserNotLoggedIn:             "user not logged in",
	StatusUserSetupError:              "user setup error",
	StatusUserNotFound:                "user not found",
	StatusApplicationCreateError:      "application creation error",
	StatusApplicationUpdateError:      "application update failed",
	StatusApplicationDoesNotExist:     "application does not exist",
	StatusApplicationInteractionError: "application interaction failed",
	StatusApplicationDeleteError:      "application deletion failed",
	StatusErrorCreatingCompany:        "error occurred creating company",
	StatusCompanyDoesNotExist:         "company does not exist",
	StatusErrorDeletingCompany:        "error occurred while deleting company",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown status"
}

var statusHTTP = map[Status]int{
	StatusOK:                          http.StatusOK,
	StatusAccountAlreadyExists:        http.StatusBadRequest,
	StatusAccountRegisterError:        http.StatusInternalServerError,
	StatusAccountDoesNotExist:         http.StatusBadRequest,
	StatusUserAlreadyLoggedIn:         http.StatusBadRequest,
	StatusUserNotLoggedIn:             http.StatusBadRequest,
	StatusUserSetupError:              http.StatusInternalServerError,
	StatusUserNotFound:                http.StatusNotFound,
	StatusApplicationCreateError:      http.StatusInternalServerError,
	StatusApplicationUpdateError:      http.StatusInternalServerError,
	StatusApplicationDoesNotExist:     http.StatusBadRequest,
	StatusApplicationInteractionError: http.StatusInternalServerError,
	StatusApplicationDeleteError:      http.StatusInternalServerError,
	StatusErrorCreatingCompany:        http.StatusInternalServerError,
	StatusCompanyDoesNotExist:         http.StatusBadRequest,
	StatusErrorDeletingCompany:        http.StatusInternalServerError,
}

// HTTPStatus returns the transport code for this status.
// Unknown values map to 500 so the edge never emits an empty code.
func (s Status) HTTPStatus() int {
	if code, ok := statusHTTP[s]; ok {
		return code
	}
	return http.StatusInternalServerError
}
