// Package odatab parses the ODAtab tables written by pyDock's oda module.
//
// An ODAtab file has one row per surface residue: the residue name, its
// sequence number and the optimal-docking-area energy assigned to it.
// Comment lines starting with '#' are skipped.
package odatab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Residue is one row of an ODAtab file.
type Residue struct {
	Name   string
	Number int
	ODA    float64
}

// Read parses an ODAtab table from r. Rows appear in file order.
func Read(r io.Reader) ([]Residue, error) {
	var out []Residue

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("odatab: line %d: expected 'name number oda', got %q",
				n, line)
		}
		num, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("odatab: line %d: residue number: %w", n, err)
		}
		oda, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("odatab: line %d: oda value: %w", n, err)
		}
		out = append(out, Residue{Name: fields[0], Number: num, ODA: oda})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile parses the ODAtab table at the given path.
func ReadFile(path string) ([]Residue, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	rs, err := Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Hotspots returns the residues with ODA energy at or below the given
// threshold (more negative is more buried on binding), preserving order.
func Hotspots(rs []Residue, threshold float64) []Residue {
	var out []Residue
	for _, r := range rs {
		if r.ODA <= threshold {
			out = append(out, r)
		}
	}
	return out
}
