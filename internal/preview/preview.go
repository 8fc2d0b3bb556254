package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/noborus/ov/oviewer"
)

// ErrNotAFile is returned when asked to preview a directory or special file
var ErrNotAFile = errors.New("not a regular file")

// Terminal is the part of *tea.Program the pager needs to take over the screen
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Pager shows file contents in the embedded ov pager
type Pager struct {
	term Terminal
	run  func(name string, r io.Reader) error
}

// New creates a pager. term may be set later with SetTerminal.
func New(term Terminal) *Pager {
	return &Pager{term: term, run: runOviewer}
}

// SetTerminal sets the program reference for terminal management
func (p *Pager) SetTerminal(term Terminal) {
	p.term = term
}

// ShowFile pages the contents of path, handing the terminal to ov until the
// user quits the pager
func (p *Pager) ShowFile(path string) error {
	if p.term == nil {
		return fmt.Errorf("program not set")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("failed to open %s: %w", path, ErrNotAFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := p.term.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.term.RestoreTerminal()
	}()

	return p.run(path, f)
}

func runOviewer(_ string, r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
