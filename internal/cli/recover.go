package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schiavinato/mnemonic-sharing/pkg/schiavinato"
	"github.com/schiavinato/mnemonic-sharing/pkg/secure"
)

// NewRecoverCommand builds the "recover" subcommand: reconstructs a
// mnemonic from a JSON file of shares, printing the full diagnostic
// RecoveryResult rather than failing silently.
func NewRecoverCommand() *cobra.Command {
	var (
		sharesFile string
		wordCount  int
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover a mnemonic from a set of shares",
		Long: `Recover reads a JSON array of shares and attempts to reconstruct the
original mnemonic. It never aborts early: every check it can run is run,
and the full diagnostic is printed even on failure.

Example:
  schiavinato recover --shares-file shares.json --words 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cmd.Flags().Changed("words") {
				wordCount = cfg.Defaults.WordCount
			}
			if !cmd.Flags().Changed("strict") {
				strict = cfg.Security.StrictValidation
			}

			data, err := os.ReadFile(sharesFile)
			if err != nil {
				return fmt.Errorf("failed to read shares file: %w", err)
			}

			var shares []schiavinato.Share
			unmarshalErr := json.Unmarshal(data, &shares)
			secure.ClearBytes(&data)
			if unmarshalErr != nil {
				return fmt.Errorf("failed to parse shares file: %w", unmarshalErr)
			}

			result := schiavinato.Recover(shares, wordCount, strict)

			if result.Success {
				color.Green("Recovery succeeded.")
				fmt.Fprintln(cmd.OutOrStdout(), *result.Mnemonic)
				return nil
			}

			color.Red("Recovery failed.")
			out, err := json.MarshalIndent(result.Errors, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode errors: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return fmt.Errorf("recovery did not succeed")
		},
	}

	cmd.Flags().StringVar(&sharesFile, "shares-file", "", "path to a JSON array of shares")
	cmd.Flags().IntVar(&wordCount, "words", 12, "expected mnemonic word count (12 or 24)")
	cmd.Flags().BoolVar(&strict, "strict", true, "require the recovered mnemonic to pass its own BIP39 checksum")
	cmd.MarkFlagRequired("shares-file")

	return cmd
}
