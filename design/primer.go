package design

// Primer is a single oligo of a designed pair with the oracle's
// per-primer metrics.
type Primer struct {
	// Start is the 0-indexed position of the 5' base in the template
	Start int `json:"start"`

	// Length of the oligo in bp
	Length int `json:"length"`

	// Tm is the predicted melting temperature in °C
	Tm float64 `json:"tm"`

	// GCPercent is the GC content percentage
	GCPercent float64 `json:"gc_percent"`

	// SelfAny is the self-complementarity score
	SelfAny float64 `json:"self_any"`

	// SelfEnd is the 3' self-complementarity (primer-dimer tendency)
	SelfEnd float64 `json:"self_end"`

	// Mispriming is the mispriming library similarity; 0 when the
	// oracle reports none
	Mispriming float64 `json:"rep"`

	// Seq of the primer in the 5'->3' direction; the right primer is
	// the reverse complement of the template region it binds
	Seq string `json:"sequence"`
}

// Pair is a left/right primer pair as ranked by the oracle.
type Pair struct {
	// Rank of the pair, 0-indexed, 0 is best
	Rank int `json:"pair_id"`

	Left  Primer `json:"left_primer"`
	Right Primer `json:"right_primer"`

	// ProductSize is the amplicon length in bp
	ProductSize int `json:"product_size"`

	// Penalty is the oracle's pair score, lower is better
	Penalty float64 `json:"penalty"`
}

// Result is the outcome of one design invocation. Pairs keep the oracle's
// ordering; this system never re-sorts them.
type Result struct {
	Pairs []Pair `json:"pairs"`

	// Count of returned pairs, len(Pairs)
	Count int `json:"num_returned"`

	// Troubleshooting names the relaxation steps applied, in order,
	// joined by "; ". Empty when the first attempt succeeded.
	Troubleshooting string `json:"troubleshooting_applied,omitempty"`
}
