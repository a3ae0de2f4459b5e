// Package primer3 binds the primer3_core executable as a black-box primer
// search oracle speaking Boulder-IO. The rest of the application only sees
// the Oracle interface and the flat result bag primer3 emits.
package primer3

// Results is the flat key/value bag a primer3 run produces, e.g.
// PRIMER_PAIR_NUM_RETURNED=2 or PRIMER_LEFT_0_TM=64.96.
type Results map[string]string

// Oracle runs a single primer search over a Boulder-IO settings map and
// returns the raw result bag. Implementations must treat zero returned
// pairs as a normal outcome, not an error; only an oracle-internal failure
// (a PRIMER_ERROR tag, a failed process) is an error.
type Oracle interface {
	Design(settings map[string]string) (Results, error)
}
