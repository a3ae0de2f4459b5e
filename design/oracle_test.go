package design

import (
	"fmt"

	"primerd/primer3"
)

// fakeOracle replays canned result bags in order, recording every settings
// map it was called with. Once the canned responses run out it keeps
// answering with zero pairs.
type fakeOracle struct {
	calls     []map[string]string
	responses []primer3.Results
	err       error
}

func (f *fakeOracle) Design(settings map[string]string) (primer3.Results, error) {
	f.calls = append(f.calls, settings)

	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return emptyResults(), nil
	}

	next := f.responses[0]
	f.responses = f.responses[1:]
	return next, nil
}

func emptyResults() primer3.Results {
	return primer3.Results{"PRIMER_PAIR_NUM_RETURNED": "0"}
}

// pairResults builds a bag with n well-formed pairs and no mispriming
// fields, mimicking a primer3 run without a repeat library.
func pairResults(n int) primer3.Results {
	results := primer3.Results{
		"PRIMER_PAIR_NUM_RETURNED": fmt.Sprintf("%d", n),
	}

	for i := 0; i < n; i++ {
		results[fmt.Sprintf("PRIMER_LEFT_%d", i)] = fmt.Sprintf("%d,25", 10+i)
		results[fmt.Sprintf("PRIMER_LEFT_%d_TM", i)] = "64.96"
		results[fmt.Sprintf("PRIMER_LEFT_%d_GC_PERCENT", i)] = "52.0"
		results[fmt.Sprintf("PRIMER_LEFT_%d_SELF_ANY_TH", i)] = "0.0"
		results[fmt.Sprintf("PRIMER_LEFT_%d_SELF_END_TH", i)] = "0.0"
		results[fmt.Sprintf("PRIMER_LEFT_%d_SEQUENCE", i)] = "GGGTCAGGATCTACTAGTGAGGTCA"

		results[fmt.Sprintf("PRIMER_RIGHT_%d", i)] = fmt.Sprintf("%d,25", 160+i)
		results[fmt.Sprintf("PRIMER_RIGHT_%d_TM", i)] = "65.12"
		results[fmt.Sprintf("PRIMER_RIGHT_%d_GC_PERCENT", i)] = "48.0"
		results[fmt.Sprintf("PRIMER_RIGHT_%d_SELF_ANY_TH", i)] = "3.2"
		results[fmt.Sprintf("PRIMER_RIGHT_%d_SELF_END_TH", i)] = "0.0"
		results[fmt.Sprintf("PRIMER_RIGHT_%d_SEQUENCE", i)] = "TGACCTCACTAGTAGATCCTGACCC"

		results[fmt.Sprintf("PRIMER_PAIR_%d_PRODUCT_SIZE", i)] = fmt.Sprintf("%d", 151+i)
		results[fmt.Sprintf("PRIMER_PAIR_%d_PENALTY", i)] = fmt.Sprintf("0.%d2", 4+i)
	}

	return results
}
