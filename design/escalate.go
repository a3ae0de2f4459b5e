package design

import (
	"strings"

	"primerd/oligo"
	"primerd/primer3"
)

// stepDelimiter joins applied troubleshooting steps in the narrative.
const stepDelimiter = "; "

// exhaustedSuffix closes the narrative when every ladder step failed.
const exhaustedSuffix = "No primers found - consider wider sequence search area"

// Escalate runs Search under the troubleshooting ladder from the lab
// protocol, short-circuiting at the first non-empty result:
//
//  1. the caller's params unchanged
//  2. GC clamp reduced to 1, when the original clamp is above 1
//  3. GC clamp reduced to 0, when the original clamp is above 0
//  4. GC clamp 0 and the original Tm band widened by ±1°C, always
//
// Each step's params are derived fresh from the caller's originals, never
// chained from a previous step. The narrative accumulates every attempted
// step; on exhaustion it ends with a pointer at a wider search area.
func Escalate(o primer3.Oracle, template string, anchor oligo.Anchor, p Params) (*Result, error) {
	var steps []string

	result, err := Search(o, template, anchor, p)
	if err != nil {
		return nil, err
	}
	if result.Count > 0 {
		return result, nil
	}

	if p.GCClamp > 1 {
		steps = append(steps, "Reduced GC clamp to 1")
		result, err = Search(o, template, anchor, p.WithGCClamp(1))
		if err != nil {
			return nil, err
		}
		if result.Count > 0 {
			result.Troubleshooting = strings.Join(steps, stepDelimiter)
			return result, nil
		}
	}

	if p.GCClamp > 0 {
		steps = append(steps, "Reduced GC clamp to 0")
		result, err = Search(o, template, anchor, p.WithGCClamp(0))
		if err != nil {
			return nil, err
		}
		if result.Count > 0 {
			result.Troubleshooting = strings.Join(steps, stepDelimiter)
			return result, nil
		}
	}

	steps = append(steps, "Widened Tm range by ±1°C")
	relaxed := p.WithGCClamp(0).WithTmRange(p.TmMin-1.0, p.TmMax+1.0)
	result, err = Search(o, template, anchor, relaxed)
	if err != nil {
		return nil, err
	}
	if result.Count > 0 {
		result.Troubleshooting = strings.Join(steps, stepDelimiter)
		return result, nil
	}

	// exhaustion is a normal empty result, not an error
	result.Troubleshooting = strings.Join(steps, stepDelimiter) + stepDelimiter + exhaustedSuffix

	return result, nil
}
