// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/jobdeck/jobdeck/internal/auth"
)

// NewHashCmd creates the hash subcommand, a small operator utility for
// producing an argon2id digest of a password.
func NewHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <password>",
		Short: "Print the argon2id digest of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := auth.NewArgon2idHasher().Hash(args[0])
			if err != nil {
				return err
			}
			cmd.Println(digest)
			return nil
		},
	}
}
