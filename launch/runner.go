// Package launch stages files for the docking tool, assembles its command
// line and runs it, directly or inside a container. It knows nothing about
// individual docking stages; the apps/pydock package supplies the file maps
// and arguments.
package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/cmd"
	"go.uber.org/zap"
)

// Container describes how to run the docking tool inside a container
// engine. The staging directory is bind-mounted at Volume, so paths handed
// to the tool must be container paths (see Runner.CmdPath).
type Container struct {
	// Engine is the container binary: "docker", "podman", "singularity" or
	// "apptainer".
	Engine string

	// Image is the image identifier (docker) or image file (singularity).
	Image string

	// Volume is the in-container mount point for the staging directory.
	// Defaults to /data.
	Volume string

	// WorkDir, if set, is the working directory inside the container. The
	// tool resolves some outputs relative to it.
	WorkDir string

	// UserID, if set, is the user to run as inside the container
	// (docker/podman only).
	UserID string
}

func (c *Container) volume() string {
	if c.Volume == "" {
		return "/data"
	}
	return c.Volume
}

// Runner executes the docking binary for one staged run.
type Runner struct {
	// Binary is the docking tool executable. If it is in $PATH, the bare
	// name is enough.
	Binary string

	// Container, when non-nil, wraps the invocation in a container engine.
	Container *Container

	// Verbose echoes the command line and the tool's output to stderr in
	// addition to the run log.
	Verbose bool

	// Log receives structured progress messages. A nil Log disables them.
	Log *zap.Logger
}

// Default runs a binary named pyDock3 found in $PATH, outside any container.
var Default = Runner{Binary: "pyDock3"}

// CmdPath returns the path argument handed to the docking tool for a staged
// file or prefix: the staged path when running directly, or the bind-mount
// path when running in a container.
func (r Runner) CmdPath(s *Staging, name string) string {
	if r.Container != nil {
		return path.Join(r.Container.volume(), name)
	}
	return s.Path(name)
}

// argv assembles the full command line, including any container prefix.
func (r Runner) argv(s *Staging, args []string) ([]string, error) {
	if r.Container == nil {
		return append([]string{r.Binary}, args...), nil
	}

	c := r.Container
	bind := s.Dir + ":" + c.volume()
	var v []string
	switch c.Engine {
	case "docker", "podman":
		v = []string{c.Engine, "run", "--rm", "-v", bind}
		if c.WorkDir != "" {
			v = append(v, "-w", c.WorkDir)
		}
		if c.UserID != "" {
			v = append(v, "-u", c.UserID)
		}
	case "singularity", "apptainer":
		v = []string{c.Engine, "exec", "--bind", bind}
		if c.WorkDir != "" {
			v = append(v, "--pwd", c.WorkDir)
		}
	default:
		return nil, fmt.Errorf("launch: unknown container engine %q", c.Engine)
	}
	v = append(v, c.Image, r.Binary)
	return append(v, args...), nil
}

// Run executes the docking tool with the given arguments. The tool's stdout
// and stderr are written to run.log inside the staging directory (and to
// stderr too when Verbose is set). Cancelling the context kills the process.
func (r Runner) Run(ctx context.Context, s *Staging, args ...string) error {
	argv, err := r.argv(s, args)
	if err != nil {
		return err
	}

	logf, err := os.Create(filepath.Join(s.Dir, "run.log"))
	if err != nil {
		return fmt.Errorf("launch: creating run log: %w", err)
	}
	defer logf.Close()

	c := cmd.New(argv[0], argv[1:]...)
	c.Cmd.Dir = s.Dir
	c.Cmd.Stdout = logf
	c.Cmd.Stderr = logf
	if r.Verbose {
		c.Cmd.Stdout = io.MultiWriter(logf, os.Stderr)
		c.Cmd.Stderr = io.MultiWriter(logf, os.Stderr)
		fmt.Fprintf(os.Stderr, "%s\n", c)
	}
	if r.Log != nil {
		r.Log.Info("running docking tool",
			zap.Strings("argv", argv),
			zap.String("dir", s.Dir))
	}

	if err := c.Cmd.Start(); err != nil {
		return fmt.Errorf("launch: starting %s: %w", argv[0], err)
	}
	done := make(chan error, 1)
	go func() { done <- c.Cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			if r.Log != nil {
				r.Log.Error("docking tool failed", zap.Error(err))
			}
			return fmt.Errorf("launch: %s: %w (see %s)",
				argv[0], err, filepath.Join(s.Dir, "run.log"))
		}
	case <-ctx.Done():
		c.Cmd.Process.Kill()
		<-done
		return ctx.Err()
	}

	if r.Log != nil {
		r.Log.Info("docking tool finished")
	}
	return nil
}
