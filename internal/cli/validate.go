package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schiavinato/mnemonic-sharing/internal/validation"
	"github.com/schiavinato/mnemonic-sharing/pkg/bip39"
	"github.com/schiavinato/mnemonic-sharing/pkg/secure"
)

// NewValidateCommand builds the "validate" subcommand: checks a mnemonic's
// word count, wordlist membership, and SHA-256 checksum.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [mnemonic]",
		Short: "Validate a BIP39 mnemonic's checksum",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := strings.Join(args, " ")
			if m == "" {
				input, err := readMnemonicInteractive("Enter mnemonic: ")
				if err != nil {
					return fmt.Errorf("failed to read mnemonic: %w", err)
				}
				m = input
			}
			defer secure.ClearString(&m)

			if err := validation.ValidateMnemonicShape(m); err != nil {
				color.Red("Invalid: %v", err)
				return fmt.Errorf("mnemonic is invalid")
			}

			if _, err := bip39.ValidateMnemonic(m); err != nil {
				color.Red("Invalid: %v", err)
				return fmt.Errorf("mnemonic is invalid")
			}

			color.Green("Valid mnemonic.")
			return nil
		},
	}

	return cmd
}
