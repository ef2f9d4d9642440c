package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schiavinato/mnemonic-sharing/pkg/lagrange"
)

// NewLagrangeCommand builds the "lagrange" subcommand: prints the
// precomputed multiplier vector gamma for a chosen share-number set, so a
// person reconstructing a secret by hand only needs k multiplications and
// additions rather than the full extended-Euclidean machinery (spec.md
// §4.C).
func NewLagrangeCommand() *cobra.Command {
	var shareNumbersSpec string

	cmd := &cobra.Command{
		Use:   "lagrange",
		Short: "Print the Lagrange multipliers for a set of share numbers",
		Long: `Prints the multiplier vector gamma for the given share numbers, with no
dependence on the shares' y-values. A disciplined recoverer can precompute
gamma once for a chosen set of shares and then reconstruct the secret with
only k multiplications and additions per word, done by hand or calculator.

Example:
  schiavinato lagrange --share-numbers 1,2,5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseShareNumbers(shareNumbersSpec)
			if err != nil {
				return err
			}

			gammas, err := lagrange.Multipliers(numbers)
			if err != nil {
				return fmt.Errorf("failed to compute multipliers: %w", err)
			}

			for i, x := range numbers {
				fmt.Fprintf(cmd.OutOrStdout(), "gamma[x=%d] = %d\n", x, gammas[i])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&shareNumbersSpec, "share-numbers", "", "comma-separated share numbers, e.g. 1,2,5")
	cmd.MarkFlagRequired("share-numbers")

	return cmd
}
