package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schiavinato/mnemonic-sharing/pkg/bip39"
	"github.com/schiavinato/mnemonic-sharing/pkg/rng"
)

// NewGenerateCommand builds the "generate" subcommand: draws entropy from
// the secure RNG and prints a fresh, valid BIP39 mnemonic.
func NewGenerateCommand() *cobra.Command {
	var wordCount int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new BIP39 mnemonic",
		Long: fmt.Sprintf(`Generate draws entropy from the operating system's secure random source
and emits a fresh 12- or 24-word BIP39 mnemonic with a valid checksum,
drawn from the embedded %d-word English wordlist.`, bip39.WordCount()),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("words") {
				wordCount = loadConfig().Defaults.WordCount
			}

			mnemonic, err := bip39.GenerateMnemonic(wordCount, rng.NewSecure())
			if err != nil {
				return fmt.Errorf("failed to generate mnemonic: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
			return nil
		},
	}

	cmd.Flags().IntVar(&wordCount, "words", 12, "mnemonic word count (12 or 24)")

	return cmd
}
