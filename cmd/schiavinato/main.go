package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/schiavinato/mnemonic-sharing/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "schiavinato",
		Short: "Split and recover BIP39 mnemonics with GF(2053) Shamir sharing",
		Long: `schiavinato splits a 12- or 24-word BIP39 mnemonic into n shares such
that any k reconstruct it, using Shamir's Secret Sharing over GF(2053).

Every share carries a dual-path checksum: a direct field-element sum and an
independently evaluated polynomial, cross-checked at both split and recover
time so silent corruption never produces a plausible-looking wrong answer.

This is a from-scratch scheme, not SLIP-0039 or a hardware-wallet standard;
shares from this tool are not compatible with Trezor or similar devices.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewSplitCommand(),
		cli.NewRecoverCommand(),
		cli.NewGenerateCommand(),
		cli.NewValidateCommand(),
		cli.NewLagrangeCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level.Set(slog.LevelDebug)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
