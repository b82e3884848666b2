// Package ene parses pyDock energy-ranking tables (.ene and .eneRST files).
//
// An ene file is whitespace-delimited with a header row naming the columns.
// A plain dockser table looks like
//
//	Conf    Ele     Desolv  VDW     Total   RANK
//	1       -14.1   2.3     5.6     -8.9    3
//	...
//
// and a dockrst .eneRST table carries extra restraint columns. Only the
// 'Conf' and 'RANK' columns are required; everything else is kept by name.
package ene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Record is one row of an ene table.
type Record struct {
	// Conf is the conformation number assigned by ftdock/rotftdock. It names
	// the model file makePDB writes for this pose.
	Conf int

	// Rank is the position of this pose in pyDock's energy ranking.
	Rank int

	// Fields holds every numeric column by its header name, including the
	// Conf and RANK columns themselves.
	Fields map[string]float64
}

// Table is a parsed ene file. Records preserve file order.
type Table struct {
	Columns []string
	Records []Record
}

// Read parses an ene table from r.
func Read(r io.Reader) (*Table, error) {
	t := &Table{}
	confCol, rankCol := -1, -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if t.Columns == nil {
			t.Columns = fields
			for i, col := range fields {
				switch col {
				case "Conf":
					confCol = i
				case "RANK":
					rankCol = i
				}
			}
			if confCol == -1 || rankCol == -1 {
				return nil, fmt.Errorf(
					"ene: header %q is missing a Conf or RANK column", fields)
			}
			continue
		}
		if len(fields) != len(t.Columns) {
			return nil, fmt.Errorf("ene: line %d: %d fields, header has %d",
				n, len(fields), len(t.Columns))
		}
		rec := Record{Fields: make(map[string]float64, len(fields))}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("ene: line %d: column %s: %w",
					n, t.Columns[i], err)
			}
			rec.Fields[t.Columns[i]] = v
		}
		rec.Conf = int(rec.Fields["Conf"])
		rec.Rank = int(rec.Fields["RANK"])
		t.Records = append(t.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if t.Columns == nil {
		return nil, fmt.Errorf("ene: empty table")
	}
	return t, nil
}

// ReadFile parses the ene table at the given path.
func ReadFile(path string) (*Table, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	t, err := Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// RankRange returns the records whose rank lies in [lo, hi], inclusive on
// both ends, preserving file order. An empty range (lo > hi) selects nothing.
func (t *Table) RankRange(lo, hi int) []Record {
	var out []Record
	for _, rec := range t.Records {
		if rec.Rank >= lo && rec.Rank <= hi {
			out = append(out, rec)
		}
	}
	return out
}

// Conformations returns the Conf column of the given records, in order.
func Conformations(recs []Record) []int {
	confs := make([]int, len(recs))
	for i, rec := range recs {
		confs[i] = rec.Conf
	}
	return confs
}

// ModelFilenames returns the PDB file names makePDB will create for the
// given records, i.e. '<name>_<conf>.pdb' for each conformation.
func ModelFilenames(name string, recs []Record) []string {
	files := make([]string, len(recs))
	for i, rec := range recs {
		files[i] = fmt.Sprintf("%s_%d.pdb", name, rec.Conf)
	}
	return files
}

// Summary describes the distribution of a scoring column.
type Summary struct {
	Column string
	N      int
	Best   float64 // lowest energy
	Mean   float64
	StdDev float64
}

// Summarize computes summary statistics over the named scoring column,
// typically "Total".
func (t *Table) Summarize(column string) (Summary, error) {
	if len(t.Records) == 0 {
		return Summary{}, fmt.Errorf("ene: no records to summarize")
	}
	xs := make([]float64, len(t.Records))
	for i, rec := range t.Records {
		v, ok := rec.Fields[column]
		if !ok {
			return Summary{}, fmt.Errorf("ene: no column %q in table", column)
		}
		xs[i] = v
	}
	return Summary{
		Column: column,
		N:      len(xs),
		Best:   floats.Min(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
	}, nil
}
