package launch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Staging is a unique scratch directory holding copies of the input files
// under the file names the docking tool insists on. The tool writes its
// outputs next to them; Collect moves those back out under the caller's
// names, and Remove throws the directory away.
type Staging struct {
	Dir  string
	keep bool
}

// NewStaging creates a fresh staging directory. When keep is true, Remove
// becomes a no-op so the directory can be inspected after a failed run.
func NewStaging(keep bool) (*Staging, error) {
	dir, err := os.MkdirTemp("", "pydock")
	if err != nil {
		return nil, fmt.Errorf("launch: creating staging dir: %w", err)
	}
	return &Staging{Dir: dir, keep: keep}, nil
}

// Path returns the path of a staged file with the given internal name.
func (s *Staging) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// StageInputs copies external files into the staging directory. The map is
// keyed by internal (tool-convention) file name; values are the external
// paths supplied by the caller. Entries with an empty external path are
// optional inputs and are skipped.
func (s *Staging) StageInputs(files map[string]string) error {
	for internal, external := range files {
		if external == "" {
			continue
		}
		if err := CopyFile(external, s.Path(internal)); err != nil {
			return fmt.Errorf("launch: staging %s: %w", internal, err)
		}
	}
	return nil
}

// Collect copies tool outputs out of the staging directory. The map is keyed
// by internal file name; values are the external destination paths. Entries
// with an empty destination are skipped. A missing staged file is an error:
// it means the tool did not produce the output it was supposed to.
func (s *Staging) Collect(files map[string]string) error {
	for internal, external := range files {
		if external == "" {
			continue
		}
		src := s.Path(internal)
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("launch: expected output %s was not created", internal)
		}
		if err := CopyFile(src, external); err != nil {
			return fmt.Errorf("launch: collecting %s: %w", internal, err)
		}
	}
	return nil
}

// Remove deletes the staging directory unless it was created with keep set.
func (s *Staging) Remove() {
	if s.keep {
		return
	}
	os.RemoveAll(s.Dir)
}

// CopyFile copies src to dst, creating dst's directory if needed and
// truncating dst if it exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// OutputsExist reports whether every non-empty path in the list names an
// existing file. Used for restart: a stage whose outputs are all present
// can be skipped.
func OutputsExist(paths ...string) bool {
	any := false
	for _, p := range paths {
		if p == "" {
			continue
		}
		any = true
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return any
}
