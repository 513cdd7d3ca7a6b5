// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/obsidian-export/internal/normalize"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [note]",
	Short: "Print a note converted to portable Markdown",
	Long: `Normalize applies the same rewrites as export and prints the result to
stdout without invoking pandoc. Reads stdin when no note is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading note: %w", err)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), normalize.Normalize(string(data)))
	return err
}
