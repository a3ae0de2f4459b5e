// Package oligo handles raw input sequences: extracting the [n] target
// marker and validating the cleaned template against the DNA alphabet.
package oligo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// marker is the three-character token that marks the target position
// in a raw input sequence. Matched case-insensitively.
const marker = "[n]"

// Anchor is the single-base pivot a primer pair must flank. Start is the
// 0-indexed offset of the marker in the raw sequence, which is also its
// offset in the cleaned template. Length is always 1: the marker stands
// for a position, not a span to preserve.
type Anchor struct {
	Start  int
	Length int
}

var (
	// ErrMissingTarget is returned when a raw sequence has no [n] marker.
	ErrMissingTarget = errors.New("sequence must contain [n] placeholder for target region")

	// ErrMultipleTargets is returned when a raw sequence has more than one
	// [n] marker. Only a single target position is supported.
	ErrMultipleTargets = errors.New("sequence contains more than one [n] placeholder")
)

// InvalidAlphabetError reports characters outside the {A,C,G,T,N} alphabet.
// Chars holds each distinct offending character exactly once, sorted.
type InvalidAlphabetError struct {
	Chars []string
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf(
		"sequence contains invalid characters: %s. Only ATGCN bases are allowed",
		strings.Join(e.Chars, ", "),
	)
}

// ParseTarget locates the [n] marker in a raw sequence and returns the
// template with the marker removed along with the target anchor. Sequences
// without a marker fail with ErrMissingTarget; sequences with more than
// one fail with ErrMultipleTargets.
func ParseTarget(raw string) (string, Anchor, error) {
	folded := strings.ToLower(raw)

	start := strings.Index(folded, marker)
	if start < 0 {
		return "", Anchor{}, ErrMissingTarget
	}
	if strings.Contains(folded[start+len(marker):], marker) {
		return "", Anchor{}, ErrMultipleTargets
	}

	template := raw[:start] + raw[start+len(marker):]

	return template, Anchor{Start: start, Length: 1}, nil
}

// Validate checks that a cleaned template contains only A, C, G, T or N
// bases (either case). On violation it returns an InvalidAlphabetError
// naming every distinct offending character once, sorted ascending.
func Validate(template string) error {
	invalid := make(map[rune]bool)
	for _, r := range template {
		switch r {
		case 'A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n':
		default:
			invalid[r] = true
		}
	}

	if len(invalid) == 0 {
		return nil
	}

	chars := make([]string, 0, len(invalid))
	for r := range invalid {
		chars = append(chars, string(r))
	}
	sort.Strings(chars)

	return &InvalidAlphabetError{Chars: chars}
}
