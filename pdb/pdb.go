// Package pdb reads just enough of a PDB file to sanity-check docking
// inputs: which chains exist, and which amino-acid residues each chain
// carries. The heavy lifting (hydrogens, AMBER typing, renaming) is done by
// the docking binary itself; this package only lets wrappers fail fast when
// a configured chain code or restraint points at nothing.
package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this package's 'init' function.
var AminoOneToThree = map[byte]string{}

func init() {
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// Entry is the chain inventory of a single PDB file.
type Entry struct {
	Path   string
	Chains map[byte]*Chain
}

// Chain records the amino-acid residues seen in ATOM records for one chain
// identifier: each residue sequence number mapped to its three-letter name.
type Chain struct {
	Ident    byte
	Residues map[int]string
}

// New reads the ATOM records of the PDB file at fileName and builds its
// chain inventory. If the file name ends with ".gz", gzip decompression is
// used. Non-amino-acid ATOM records (waters, ligands) are skipped.
func New(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fileName) == ".gz" {
		if reader, err = gzip.NewReader(f); err != nil {
			return nil, err
		}
	}

	entry := &Entry{
		Path:   fileName,
		Chains: make(map[byte]*Chain),
	}

	// ATOM lines are fixed-column; anything shorter than the residue number
	// field is not one of ours.
	breader := bufio.NewReaderSize(reader, 1000)
	for {
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(line) < 26 || strings.TrimSpace(string(line[0:6])) != "ATOM" {
			continue
		}
		entry.parseAtom(line)
	}

	if len(entry.Chains) == 0 {
		return nil, fmt.Errorf("pdb: %s has no amino-acid ATOM records", fileName)
	}
	return entry, nil
}

// parseAtom records the residue of a single ATOM line. The chain identifier
// is column 21, the residue name columns 17-19 and the residue sequence
// number columns 22-25.
func (e *Entry) parseAtom(line []byte) {
	residue := strings.TrimSpace(string(line[17:20]))
	if _, ok := AminoThreeToOne[residue]; !ok {
		return
	}
	num, err := strconv.Atoi(strings.TrimSpace(string(line[22:26])))
	if err != nil {
		return
	}
	e.getOrMakeChain(line[21]).Residues[num] = residue
}

// getOrMakeChain looks for a chain corresponding to the chain identifier.
// If one doesn't exist, it is created and returned.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.Chains[ident]; ok {
		return chain
	}
	e.Chains[ident] = &Chain{
		Ident:    ident,
		Residues: make(map[int]string),
	}
	return e.Chains[ident]
}

// Chain returns the chain with the given identifier, or nil.
func (e *Entry) Chain(ident byte) *Chain {
	return e.Chains[ident]
}

// HasChain reports whether the entry has a chain with the given identifier.
func (e *Entry) HasChain(ident byte) bool {
	_, ok := e.Chains[ident]
	return ok
}

// Idents returns the chain identifiers present in the entry, sorted.
func (e *Entry) Idents() []byte {
	idents := make([]byte, 0, len(e.Chains))
	for ident := range e.Chains {
		idents = append(idents, ident)
	}
	sort.Slice(idents, func(i, j int) bool { return idents[i] < idents[j] })
	return idents
}

// String returns a sorted one-line-per-chain summary of the entry.
func (e *Entry) String() string {
	lines := make([]string, 0, len(e.Chains))
	for _, ident := range e.Idents() {
		lines = append(lines, e.Chains[ident].String())
	}
	return strings.Join(lines, "\n")
}

// Residue returns the three-letter name of the residue with the given
// sequence number, if the chain has one.
func (c *Chain) Residue(num int) (string, bool) {
	name, ok := c.Residues[num]
	return name, ok
}

// String returns a short summary of the chain.
func (c *Chain) String() string {
	return fmt.Sprintf("chain %c :: %d residues", c.Ident, len(c.Residues))
}
