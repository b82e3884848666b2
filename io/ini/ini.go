// Package ini reads and writes the small INI files consumed by pyDock.
//
// pyDock is picky about these files: sections must appear in the order they
// were added ([receptor] before [ligand], with an optional [reference] block
// at the end), and the 'pdb' key must come first within a section. A generic
// INI library backed by maps cannot guarantee either, so this package keeps
// everything as ordered slices.
package ini

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Key is a single 'name = value' line within a section.
type Key struct {
	Name  string
	Value string
}

// Section is a named block of keys. Keys are written in insertion order.
type Section struct {
	Name string
	Keys []Key
}

// Set appends a key to the section. Setting the same name twice writes the
// line twice; pyDock never does this, and neither should callers.
func (s *Section) Set(name, value string) {
	s.Keys = append(s.Keys, Key{Name: name, Value: value})
}

// Get returns the value of the first key with the given name.
func (s *Section) Get(name string) (string, bool) {
	for _, k := range s.Keys {
		if k.Name == name {
			return k.Value, true
		}
	}
	return "", false
}

// File is an ordered list of sections.
type File struct {
	Sections []*Section
}

// AddSection appends a new empty section and returns it.
func (f *File) AddSection(name string) *Section {
	s := &Section{Name: name}
	f.Sections = append(f.Sections, s)
	return s
}

// Section returns the first section with the given name, or nil.
func (f *File) Section(name string) *Section {
	for _, s := range f.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Write writes the file in pyDock's format: '[section]' headers followed by
// 'key = value' lines, one per line, in insertion order.
func (f *File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range f.Sections {
		fmt.Fprintf(bw, "[%s]\n", s.Name)
		for _, k := range s.Keys {
			fmt.Fprintf(bw, "%s = %s\n", k.Name, k.Value)
		}
	}
	return bw.Flush()
}

// WriteFile writes the file to the given path, truncating it if it exists.
func (f *File) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Read parses an INI file written by Write (or by pyDock itself). Blank
// lines and lines starting with '#' or ';' are ignored. A key line outside
// any section is an error.
func Read(r io.Reader) (*File, error) {
	f := &File{}
	var cur *Section

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case len(line) == 0, line[0] == '#', line[0] == ';':
			continue
		case line[0] == '[':
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("ini: line %d: malformed section header %q", n, line)
			}
			cur = f.AddSection(strings.TrimSpace(line[1 : len(line)-1]))
		default:
			eq := strings.Index(line, "=")
			if eq == -1 {
				return nil, fmt.Errorf("ini: line %d: expected 'key = value', got %q", n, line)
			}
			if cur == nil {
				return nil, fmt.Errorf("ini: line %d: key outside of any section", n)
			}
			cur.Set(strings.TrimSpace(line[:eq]), strings.TrimSpace(line[eq+1:]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile parses the INI file at the given path.
func ReadFile(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return Read(in)
}
