package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NBDsoftware/biobb-pydock/apps/pydock"
	"github.com/NBDsoftware/biobb-pydock/launch"
)

// Properties is the YAML configuration file shared by all subcommands. Its
// keys follow the workflow configs this tool is driven from.
type Properties struct {
	DockingName string `yaml:"docking_name"`
	SubunitName string `yaml:"subunit_name"`
	BinaryPath  string `yaml:"binary_path"`

	Receptor  MoleculeProps   `yaml:"receptor"`
	Ligand    MoleculeProps   `yaml:"ligand"`
	Reference *ReferenceProps `yaml:"reference"`

	Rank1 int `yaml:"rank1"`
	Rank2 int `yaml:"rank2"`

	RemoveTmp *bool `yaml:"remove_tmp"`
	Restart   bool  `yaml:"restart"`

	ContainerPath       string `yaml:"container_path"`
	ContainerImage      string `yaml:"container_image"`
	ContainerVolumePath string `yaml:"container_volume_path"`
	ContainerWorkingDir string `yaml:"container_working_dir"`
	ContainerUserID     string `yaml:"container_user_id"`
}

// MoleculeProps mirrors the receptor/ligand dictionaries: the chain in the
// input file, the chain after setup, and an optional comma-separated
// restraint list.
type MoleculeProps struct {
	Mol    string `yaml:"mol"`
	Newmol string `yaml:"newmol"`
	Restr  string `yaml:"restr"`
}

// ReferenceProps mirrors the reference dictionary.
type ReferenceProps struct {
	Recmol string `yaml:"recmol"`
	Ligmol string `yaml:"ligmol"`
}

func defaultProperties() Properties {
	return Properties{
		DockingName: "docking",
		BinaryPath:  "pyDock3",
		Receptor:    MoleculeProps{Mol: "A", Newmol: "A"},
		Ligand:      MoleculeProps{Mol: "A", Newmol: "B"},
		Rank1:       1,
		Rank2:       10,
	}
}

// loadProperties reads the YAML properties file, if one was given, over the
// defaults.
func loadProperties(path string) (Properties, error) {
	props := defaultProperties()
	if path == "" {
		return props, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return props, err
	}
	if err := yaml.Unmarshal(data, &props); err != nil {
		return props, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

func (p Properties) molecule(m MoleculeProps) pydock.Molecule {
	mol := pydock.Molecule{Chain: m.Mol, NewChain: m.Newmol}
	if m.Restr != "" {
		mol.Restraints = strings.Split(m.Restr, ",")
	}
	return mol
}

// config assembles the wrapper configuration from the properties and the
// global flags.
func (p Properties) config(verbose bool) pydock.Config {
	conf := pydock.Config{
		Binary:   p.BinaryPath,
		Name:     p.DockingName,
		Receptor: p.molecule(p.Receptor),
		Ligand:   p.molecule(p.Ligand),
		Restart:  p.Restart,
		Verbose:  verbose,
		Log:      newLogger(verbose),
	}
	if p.RemoveTmp != nil && !*p.RemoveTmp {
		conf.KeepTemp = true
	}
	if p.Reference != nil {
		conf.Reference = &pydock.Reference{
			RecChain: p.Reference.Recmol,
			LigChain: p.Reference.Ligmol,
		}
	}
	if p.ContainerPath != "" {
		conf.Container = &launch.Container{
			Engine:  p.ContainerPath,
			Image:   p.ContainerImage,
			Volume:  p.ContainerVolumePath,
			WorkDir: p.ContainerWorkingDir,
			UserID:  p.ContainerUserID,
		}
	}
	return conf
}
