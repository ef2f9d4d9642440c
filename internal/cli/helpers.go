package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/schiavinato/mnemonic-sharing/pkg/config"
)

// loadConfig returns the user's preferences, creating the file with
// defaults on first run. A load failure falls back to the built-in
// defaults rather than aborting the command — CLI preferences are never
// load-bearing for correctness, only for which defaults a flag takes.
func loadConfig() *config.Config {
	cm, err := config.NewConfigManager()
	if err != nil {
		slog.Warn("failed to load config, using built-in defaults", "error", err)
		return config.DefaultConfig()
	}
	return cm.GetConfig()
}

// readMnemonicInteractive reads a mnemonic from the terminal without
// echoing it, falling back to a plain line read when stdin isn't a tty.
func readMnemonicInteractive(prompt string) (string, error) {
	fmt.Print(prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		line, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(line)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseShareNumbers parses a comma-separated list of share numbers, e.g.
// "1,2,5".
func parseShareNumbers(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	numbers := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid share number %q: %w", p, err)
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("no share numbers given")
	}
	return numbers, nil
}
