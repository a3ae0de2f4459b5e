package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	seqArg     string
	seqPathArg string
)

// readSeq resolves the input sequence from --seq or --seq-file.
func readSeq() (string, error) {
	if seqArg != "" {
		return strings.TrimSpace(seqArg), nil
	}

	if seqPathArg != "" {
		raw, err := os.ReadFile(seqPathArg)
		if err != nil {
			return "", fmt.Errorf("failed to read sequence file %s: %w", seqPathArg, err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	return "", errors.New("pass a sequence with --seq or --seq-file")
}
