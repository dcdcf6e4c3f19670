package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for spelldigest.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spelldigest",
		Short: "Digest the misspelled words of a remote document",
		Long: `spelldigest fetches a text document, splits it into words and asks a
remote spell-check service about every word concurrently. The words the
service does not know are concatenated and hashed, and the digest is printed
with the "@outsideinc.com" suffix.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
