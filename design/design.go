// Package design maps a [n]-marked input sequence onto primer3 searches:
// a validated constraint bundle, a single search invocation, and the
// troubleshooting ladder that relaxes constraints until primers are found.
package design

import (
	"primerd/oligo"
	"primerd/primer3"
)

// Design runs a single primer search for a raw sequence carrying a [n]
// target marker. Params and sequence are validated before the oracle is
// ever consulted; no escalation is applied.
func Design(o primer3.Oracle, sequence string, p Params) (*Result, error) {
	template, anchor, err := prepare(sequence, p)
	if err != nil {
		return nil, err
	}

	return Search(o, template, anchor, p)
}

// Troubleshoot runs the escalation ladder with the protocol-default
// params, requesting up to numReturn pairs.
func Troubleshoot(o primer3.Oracle, sequence string, numReturn int) (*Result, error) {
	p := DefaultParams()
	p.NumReturn = numReturn

	template, anchor, err := prepare(sequence, p)
	if err != nil {
		return nil, err
	}

	return Escalate(o, template, anchor, p)
}

// prepare validates the params, extracts the target anchor and checks the
// cleaned template's alphabet.
func prepare(sequence string, p Params) (string, oligo.Anchor, error) {
	if err := p.Validate(); err != nil {
		return "", oligo.Anchor{}, err
	}

	template, anchor, err := oligo.ParseTarget(sequence)
	if err != nil {
		return "", oligo.Anchor{}, err
	}

	if err := oligo.Validate(template); err != nil {
		return "", oligo.Anchor{}, err
	}

	return template, anchor, nil
}
