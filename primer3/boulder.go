package primer3

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// renderBoulder serializes a settings map as a Boulder-IO record:
// KEY=value lines terminated by a lone "=". Keys are written in sorted
// order so input files are reproducible.
func renderBoulder(settings map[string]string) []byte {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, key := range keys {
		fmt.Fprintf(&buf, "%s=%s\n", key, settings[key])
	}
	buf.WriteString("=") // required at record's end

	return buf.Bytes()
}

// parseBoulder reads a Boulder-IO record into a flat map. Lines without
// an "=" separator (including the record terminator) are skipped.
func parseBoulder(raw []byte) Results {
	results := make(Results)
	for _, line := range strings.Split(string(raw), "\n") {
		key, val, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		results[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}

	return results
}

// resultsFrom parses a raw primer3 output record and surfaces a
// PRIMER_ERROR tag as an error. A zero pair count is left to the caller.
func resultsFrom(raw []byte) (Results, error) {
	results := parseBoulder(raw)

	if p3Error := results["PRIMER_ERROR"]; p3Error != "" {
		return nil, fmt.Errorf("primer3 error: %s", p3Error)
	}

	return results, nil
}
