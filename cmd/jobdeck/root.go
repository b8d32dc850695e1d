// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package main

import (
	"github.com/spf13/cobra"
)

// version is stamped by the build; "dev" for local builds.
var version = "dev"

// NewRootCmd creates the root command for the jobdeck CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobdeck",
		Short:   "Jobdeck - a multi-tenant job-board backend",
		Long:    `Jobdeck serves account sessions, companies, job applications, and user profiles.`,
		Version: version,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewHashCmd())

	return cmd
}
