package pydock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NBDsoftware/biobb-pydock/io/ini"
	"github.com/NBDsoftware/biobb-pydock/pdb"
)

// dockingINI builds the INI file the tool reads for setup and dockrst. The
// pdb arguments are the paths the tool will see (container paths when
// running containerized); refPDB may be empty, in which case no [reference]
// section is written.
func (c Config) dockingINI(recPDB, ligPDB, refPDB string) *ini.File {
	f := &ini.File{}

	writeMol := func(name, pdbPath string, mol Molecule) {
		s := f.AddSection(name)
		if pdbPath != "" {
			s.Set("pdb", pdbPath)
		}
		s.Set("mol", mol.Chain)
		s.Set("newmol", mol.NewChain)
		if len(mol.Restraints) > 0 {
			s.Set("restr", strings.Join(mol.Restraints, ","))
		}
	}
	writeMol("receptor", recPDB, c.Receptor)
	writeMol("ligand", ligPDB, c.Ligand)

	if c.Reference != nil && refPDB != "" {
		s := f.AddSection("reference")
		s.Set("pdb", refPDB)
		s.Set("recmol", c.Reference.RecChain)
		s.Set("ligmol", c.Reference.LigChain)
	}
	return f
}

// checkMolecules validates the chain dictionaries shared by stages that
// write an INI file.
func (c Config) checkMolecules() error {
	for _, m := range []struct {
		role string
		mol  Molecule
	}{{"receptor", c.Receptor}, {"ligand", c.Ligand}} {
		if len(m.mol.Chain) != 1 || len(m.mol.NewChain) != 1 {
			return fmt.Errorf("pydock: %s chain codes must be single characters, got mol=%q newmol=%q",
				m.role, m.mol.Chain, m.mol.NewChain)
		}
		for _, r := range m.mol.Restraints {
			if err := checkRestraint(r, m.mol.NewChain); err != nil {
				return fmt.Errorf("pydock: %s: %w", m.role, err)
			}
		}
	}
	if c.Receptor.NewChain == c.Ligand.NewChain {
		return fmt.Errorf("pydock: receptor and ligand newmol are both %q; they must differ",
			c.Receptor.NewChain)
	}
	return nil
}

// checkRestraint validates a 'chain.Res.number' restraint such as
// 'A.Arg.45': the renamed chain code, a three-letter amino acid with only
// the first letter in uppercase, and the residue number from the original
// file.
func checkRestraint(restr, newChain string) error {
	parts := strings.Split(restr, ".")
	if len(parts) != 3 {
		return fmt.Errorf("restraint %q is not of the form chain.Res.number", restr)
	}
	if parts[0] != newChain {
		return fmt.Errorf("restraint %q names chain %q, want the renamed chain %q",
			restr, parts[0], newChain)
	}
	res := parts[1]
	if len(res) != 3 {
		return fmt.Errorf("restraint %q: %q is not a three-letter residue code", restr, res)
	}
	if _, ok := pdb.AminoThreeToOne[strings.ToUpper(res)]; !ok {
		return fmt.Errorf("restraint %q: unknown residue %q", restr, res)
	}
	if res != strings.ToUpper(res[:1])+strings.ToLower(res[1:]) {
		return fmt.Errorf("restraint %q: residue must be capitalized like %q",
			restr, strings.ToUpper(res[:1])+strings.ToLower(res[1:]))
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return fmt.Errorf("restraint %q: %q is not a residue number", restr, parts[2])
	}
	return nil
}

// checkChainInFile verifies that the configured chain actually exists in
// the given structure file. Empty paths are skipped (optional inputs).
func checkChainInFile(path, chain, role string) error {
	if path == "" || chain == "" {
		return nil
	}
	entry, err := pdb.New(path)
	if err != nil {
		return fmt.Errorf("pydock: reading %s structure: %w", role, err)
	}
	if !entry.HasChain(chain[0]) {
		return fmt.Errorf("pydock: %s chain %q not found in %s (chains: %s)",
			role, chain, path, string(entry.Idents()))
	}
	return nil
}
