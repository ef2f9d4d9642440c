package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schiavinato/mnemonic-sharing/pkg/rng"
	"github.com/schiavinato/mnemonic-sharing/pkg/schiavinato"
	"github.com/schiavinato/mnemonic-sharing/pkg/secure"
)

// NewSplitCommand builds the "split" subcommand: turns a BIP39 mnemonic
// into n field-element shares, any k of which reconstruct it.
func NewSplitCommand() *cobra.Command {
	var (
		mnemonic   string
		threshold  int
		shares     int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a BIP39 mnemonic into k-of-n shares",
		Long: `Split a 12- or 24-word BIP39 mnemonic into n field-element shares
such that any k of them reconstruct the original mnemonic.

Examples:
  schiavinato split --mnemonic "abandon abandon ... about" -k 2 -n 3
  schiavinato split -k 3 -n 5 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Defaults.Threshold
			}
			if !cmd.Flags().Changed("shares") {
				shares = cfg.Defaults.Shares
			}

			m := mnemonic
			if m == "" {
				input, err := readMnemonicInteractive("Enter mnemonic: ")
				if err != nil {
					return fmt.Errorf("failed to read mnemonic: %w", err)
				}
				m = input
			}
			defer secure.ClearString(&m)

			result, err := schiavinato.Split(m, threshold, shares, rng.NewSecure())
			if err != nil {
				return fmt.Errorf("split failed: %w", err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode shares: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			color.Green("Generated %d shares (threshold %d):", shares, threshold)
			for _, s := range result {
				data, err := json.Marshal(s)
				if err != nil {
					return fmt.Errorf("failed to encode share %d: %w", s.ShareNumber, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  share %d: %s\n", s.ShareNumber, data)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP39 mnemonic to split (prompted if omitted)")
	cmd.Flags().IntVarP(&threshold, "threshold", "k", 2, "minimum shares required to reconstruct")
	cmd.Flags().IntVarP(&shares, "shares", "n", 3, "total number of shares to produce")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output the full share array as JSON")

	return cmd
}
