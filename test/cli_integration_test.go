package test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schiavinato/mnemonic-sharing/internal/cli"
	"github.com/schiavinato/mnemonic-sharing/pkg/schiavinato"
)

// newTestRootCmd builds the same command tree as cmd/schiavinato/main.go,
// without the process-level slog/os.Exit wiring, so it can be driven
// in-process and its output captured.
func newTestRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "schiavinato"}
	root.AddCommand(
		cli.NewSplitCommand(),
		cli.NewRecoverCommand(),
		cli.NewGenerateCommand(),
		cli.NewValidateCommand(),
		cli.NewLagrangeCommand(),
	)
	return root
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newTestRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_GenerateProducesValidMnemonic(t *testing.T) {
	out, err := runCmd(t, "generate", "--words", "12")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, validateErr := runCmd(t, "validate", out[:len(out)-1]) // trim trailing newline
	assert.NoError(t, validateErr)
}

func TestCLI_ValidateRejectsGarbage(t *testing.T) {
	_, err := runCmd(t, "validate", "not", "a", "real", "mnemonic", "at", "all", "nope", "nope", "nope", "nope", "nope")
	assert.Error(t, err)
}

func TestCLI_SplitJSONThenRecoverRoundTrip(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	out, err := runCmd(t, "split", "--mnemonic", mnemonic, "-k", "2", "-n", "3", "--json")
	require.NoError(t, err)

	var shares []schiavinato.Share
	require.NoError(t, json.Unmarshal([]byte(out), &shares))
	require.Len(t, shares, 3)

	dir := t.TempDir()
	sharesPath := filepath.Join(dir, "shares.json")
	subset, err := json.Marshal(shares[:2])
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(sharesPath, subset, 0o600))

	recoverOut, err := runCmd(t, "recover", "--shares-file", sharesPath, "--words", "12")
	require.NoError(t, err)
	assert.Contains(t, recoverOut, mnemonic)
}

func TestCLI_RecoverReportsDiagnosticsOnFailure(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	out, err := runCmd(t, "split", "--mnemonic", mnemonic, "-k", "3", "-n", "5", "--json")
	require.NoError(t, err)

	var shares []schiavinato.Share
	require.NoError(t, json.Unmarshal([]byte(out), &shares))

	shares[0].WordShares[0] = (shares[0].WordShares[0] + 1) % 2053

	dir := t.TempDir()
	sharesPath := filepath.Join(dir, "shares.json")
	subset, err := json.Marshal(shares[:3])
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(sharesPath, subset, 0o600))

	recoverOut, recoverErr := runCmd(t, "recover", "--shares-file", sharesPath, "--words", "12")
	assert.Error(t, recoverErr)
	assert.Contains(t, recoverOut, "row")
}

func TestCLI_LagrangePrintsMultiplierPerShareNumber(t *testing.T) {
	out, err := runCmd(t, "lagrange", "--share-numbers", "1,2,5")
	require.NoError(t, err)
	assert.Contains(t, out, "gamma[x=1]")
	assert.Contains(t, out, "gamma[x=2]")
	assert.Contains(t, out, "gamma[x=5]")
}

func TestCLI_SplitRejectsThresholdAboveShareCount(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	_, err := runCmd(t, "split", "--mnemonic", mnemonic, "-k", "5", "-n", "3")
	assert.Error(t, err)
}
