package primer3

import (
	"fmt"
	"os"
	"os/exec"
)

// Exec runs the primer3_core executable against temporary Boulder-IO
// input/output files, one subprocess per Design call.
type Exec struct {
	// Path to the primer3_core executable
	Path string

	// ThermoParamsPath is primer3's thermodynamic parameters folder.
	// Empty means primer3's compiled-in defaults.
	ThermoParamsPath string
}

// NewExec creates a primer3_core binding. An empty path falls back to
// "primer3_core" on the PATH.
func NewExec(path, thermoParamsPath string) *Exec {
	if path == "" {
		path = "primer3_core"
	}

	return &Exec{
		Path:             path,
		ThermoParamsPath: thermoParamsPath,
	}
}

// Design writes the settings to a Boulder-IO input file, executes
// primer3_core against it with -strict_tags, and parses the output bag.
func (e *Exec) Design(settings map[string]string) (Results, error) {
	in, err := os.CreateTemp("", "primer3-in-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create primer3 input file: %w", err)
	}
	defer os.Remove(in.Name())

	out, err := os.CreateTemp("", "primer3-out-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create primer3 output file: %w", err)
	}
	defer os.Remove(out.Name())
	out.Close()

	merged := make(map[string]string, len(settings)+1)
	for key, val := range settings {
		merged[key] = val
	}
	if e.ThermoParamsPath != "" {
		merged["PRIMER_THERMODYNAMIC_PARAMETERS_PATH"] = e.ThermoParamsPath
	}

	if _, err := in.Write(renderBoulder(merged)); err != nil {
		return nil, fmt.Errorf("failed to write primer3 input file %s: %w", in.Name(), err)
	}
	if err := in.Close(); err != nil {
		return nil, fmt.Errorf("failed to close primer3 input file %s: %w", in.Name(), err)
	}

	p3Cmd := exec.Command(
		e.Path,
		in.Name(),
		"-output", out.Name(),
		"-strict_tags",
	)

	// execute primer3 and wait on it to finish
	if output, err := p3Cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to execute %s on input file %s: %s: %w", e.Path, in.Name(), string(output), err)
	}

	raw, err := os.ReadFile(out.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read primer3 output file %s: %w", out.Name(), err)
	}

	return resultsFrom(raw)
}
