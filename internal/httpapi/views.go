// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package httpapi

import (
	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/board"
)

// Response shapes. The password hash never appears in any view.

type accountBody struct {
	ID             uint64   `json:"id"`
	Username       string   `json:"username"`
	CompanyIDs     []uint64 `json:"company_ids,omitempty"`
	ApplicationIDs []uint64 `json:"application_ids,omitempty"`
}

func accountView(a *auth.Account) accountBody {
	return accountBody{
		ID:             a.ID,
		Username:       a.Username,
		CompanyIDs:     a.CompanyIDs,
		ApplicationIDs: a.ApplicationIDs,
	}
}

type companyBody struct {
	ID               uint64   `json:"id"`
	Name             string   `json:"name"`
	Website          string   `json:"website"`
	Industry         string   `json:"industry"`
	OrganizationSize string   `json:"organization_size"`
	ApplicationIDs   []uint64 `json:"application_ids,omitempty"`
}

func companyView(c *board.Company) companyBody {
	return companyBody{
		ID:               c.ID,
		Name:             c.Name,
		Website:          c.Website,
		Industry:         string(c.Industry),
		OrganizationSize: string(c.OrganizationSize),
		ApplicationIDs:   c.ApplicationIDs,
	}
}

type applicationBody struct {
	ID              uint64   `json:"id"`
	CompanyID       uint64   `json:"company_id"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	Requirements    []string `json:"requirements,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	Views           int      `json:"views"`
}

func applicationView(a *board.Application) applicationBody {
	return applicationBody{
		ID:              a.ID,
		CompanyID:       a.CompanyID,
		Location:        string(a.Location),
		JobType:         string(a.JobType),
		ExperienceLevel: string(a.ExperienceLevel),
		Requirements:    a.Requirements,
		Benefits:        a.Benefits,
		Views:           a.Views,
	}
}

type profileEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type preferenceView struct {
	Industries       []string `json:"industries,omitempty"`
	JobLocations     []string `json:"job_locations,omitempty"`
	JobTypes         []string `json:"job_types,omitempty"`
	ExperienceLevels []string `json:"experience_levels,omitempty"`
}

type userBody struct {
	Username   string         `json:"username"`
	Education  []profileEntry `json:"education,omitempty"`
	Skills     []profileEntry `json:"skills,omitempty"`
	Experience []profileEntry `json:"experience,omitempty"`
	Preference preferenceView `json:"preference"`
}

func entriesView(entries []board.ProfileEntry) []profileEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]profileEntry, len(entries))
	for i, e := range entries {
		out[i] = profileEntry{Name: e.Name, Description: e.Description}
	}
	return out
}

func entriesModel(entries []profileEntry) []board.ProfileEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]board.ProfileEntry, len(entries))
	for i, e := range entries {
		out[i] = board.ProfileEntry{Name: e.Name, Description: e.Description}
	}
	return out
}

func userView(u *board.User) userBody {
	return userBody{
		Username:   u.Username,
		Education:  entriesView(u.Education),
		Skills:     entriesView(u.Skills),
		Experience: entriesView(u.Experience),
		Preference: preferenceView{
			Industries:       stringsOf(u.Preference.Industries),
			JobLocations:     stringsOf(u.Preference.JobLocations),
			JobTypes:         stringsOf(u.Preference.JobTypes),
			ExperienceLevels: stringsOf(u.Preference.ExperienceLevels),
		},
	}
}

func (r userRequest) fields() board.UserFields {
	return board.UserFields{
		Education:  entriesModel(r.Education),
		Skills:     entriesModel(r.Skills),
		Experience: entriesModel(r.Experience),
		Preference: board.Preference{
			Industries:       typedOf[board.Industry](r.Preference.Industries),
			JobLocations:     typedOf[board.JobLocation](r.Preference.JobLocations),
			JobTypes:         typedOf[board.JobType](r.Preference.JobTypes),
			ExperienceLevels: typedOf[board.ExperienceLevel](r.Preference.ExperienceLevels),
		},
	}
}

func stringsOf[T ~string](values []T) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func typedOf[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
