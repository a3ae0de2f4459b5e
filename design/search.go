package design

import (
	"fmt"
	"strconv"
	"strings"

	"primerd/oligo"
	"primerd/primer3"
)

// Search invokes the oracle exactly once with constraints built from the
// params and maps the flat result bag into ranked pairs. Zero returned
// pairs is a normal empty Result; oracle errors propagate unchanged.
func Search(o primer3.Oracle, template string, anchor oligo.Anchor, p Params) (*Result, error) {
	results, err := o.Design(settings(template, anchor, p))
	if err != nil {
		return nil, err
	}

	pairs, err := parsePairs(results)
	if err != nil {
		return nil, err
	}

	return &Result{Pairs: pairs, Count: len(pairs)}, nil
}

// settings builds the oracle's Boulder-IO request. The product-size window
// runs from the configured lower bound to the template length, capped;
// a template shorter than the lower bound yields an inverted window that
// the oracle answers with zero pairs.
func settings(template string, anchor oligo.Anchor, p Params) map[string]string {
	productMax := len(template)
	if productMax > p.ProductSizeCap {
		productMax = p.ProductSizeCap
	}

	return map[string]string{
		"SEQUENCE_ID":       "input_sequence",
		"SEQUENCE_TEMPLATE": template,
		"SEQUENCE_TARGET":   fmt.Sprintf("%d,%d", anchor.Start, anchor.Length),

		"PRIMER_MIN_SIZE": strconv.Itoa(p.SizeMin),
		"PRIMER_OPT_SIZE": strconv.Itoa(p.SizeOpt),
		"PRIMER_MAX_SIZE": strconv.Itoa(p.SizeMax),

		"PRIMER_MIN_TM": formatTm(p.TmMin),
		"PRIMER_OPT_TM": formatTm(p.TmOpt),
		"PRIMER_MAX_TM": formatTm(p.TmMax),

		"PRIMER_MIN_GC": "20.0",
		"PRIMER_MAX_GC": "80.0",

		"PRIMER_GC_CLAMP":   strconv.Itoa(p.GCClamp),
		"PRIMER_NUM_RETURN": strconv.Itoa(p.NumReturn),

		"PRIMER_PRODUCT_SIZE_RANGE": fmt.Sprintf("%d-%d", p.ProductSizeMin, productMax),
	}
}

func formatTm(tm float64) string {
	return strconv.FormatFloat(tm, 'f', 1, 64)
}

// parsePairs projects the oracle's named-field bag into typed pairs. This
// is the one place that knows primer3's result field names; everything
// the pairs need is read here and nowhere else.
func parsePairs(results primer3.Results) ([]Pair, error) {
	count := 0
	if raw, ok := results["PRIMER_PAIR_NUM_RETURNED"]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("malformed PRIMER_PAIR_NUM_RETURNED %q: %w", raw, err)
		}
		count = n
	}

	pairs := make([]Pair, 0, count)
	for i := 0; i < count; i++ {
		left, err := parsePrimer(results, "LEFT", i)
		if err != nil {
			return nil, err
		}

		right, err := parsePrimer(results, "RIGHT", i)
		if err != nil {
			return nil, err
		}

		productSize, err := intField(results, fmt.Sprintf("PRIMER_PAIR_%d_PRODUCT_SIZE", i))
		if err != nil {
			return nil, err
		}

		penalty, err := floatField(results, fmt.Sprintf("PRIMER_PAIR_%d_PENALTY", i))
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, Pair{
			Rank:        i,
			Left:        left,
			Right:       right,
			ProductSize: productSize,
			Penalty:     penalty,
		})
	}

	return pairs, nil
}

// parsePrimer reads one strand's fields at a pair index. side is either
// "LEFT" or "RIGHT".
func parsePrimer(results primer3.Results, side string, i int) (Primer, error) {
	prefix := fmt.Sprintf("PRIMER_%s_%d", side, i)

	// position is reported as "start,length"
	position, err := strField(results, prefix)
	if err != nil {
		return Primer{}, err
	}
	startRaw, lengthRaw, ok := strings.Cut(position, ",")
	if !ok {
		return Primer{}, fmt.Errorf("malformed %s position %q", prefix, position)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startRaw))
	if err != nil {
		return Primer{}, fmt.Errorf("malformed %s position %q: %w", prefix, position, err)
	}
	length, err := strconv.Atoi(strings.TrimSpace(lengthRaw))
	if err != nil {
		return Primer{}, fmt.Errorf("malformed %s position %q: %w", prefix, position, err)
	}

	tm, err := floatField(results, prefix+"_TM")
	if err != nil {
		return Primer{}, err
	}

	gc, err := floatField(results, prefix+"_GC_PERCENT")
	if err != nil {
		return Primer{}, err
	}

	selfAny, err := floatField(results, prefix+"_SELF_ANY_TH")
	if err != nil {
		return Primer{}, err
	}

	selfEnd, err := floatField(results, prefix+"_SELF_END_TH")
	if err != nil {
		return Primer{}, err
	}

	seq, err := strField(results, prefix+"_SEQUENCE")
	if err != nil {
		return Primer{}, err
	}

	// mispriming is only present when primer3 ran with a repeat library
	mispriming := 0.0
	if _, ok := results[prefix+"_LIBRARY_MISPRIMING"]; ok {
		mispriming, err = floatField(results, prefix+"_LIBRARY_MISPRIMING")
		if err != nil {
			return Primer{}, err
		}
	}

	return Primer{
		Start:      start,
		Length:     length,
		Tm:         tm,
		GCPercent:  gc,
		SelfAny:    selfAny,
		SelfEnd:    selfEnd,
		Mispriming: mispriming,
		Seq:        seq,
	}, nil
}

func strField(results primer3.Results, key string) (string, error) {
	val, ok := results[key]
	if !ok {
		return "", fmt.Errorf("primer3 results missing %s", key)
	}
	return val, nil
}

func intField(results primer3.Results, key string) (int, error) {
	raw, err := strField(results, key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q: %w", key, raw, err)
	}
	return n, nil
}

func floatField(results primer3.Results, key string) (float64, error) {
	raw, err := strField(results, key)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q: %w", key, raw, err)
	}
	return f, nil
}
