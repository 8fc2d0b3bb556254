package fileops

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"filefinder/internal/eventbus"
)

// ErrIsDirectory is returned when asked to delete a directory
var ErrIsDirectory = errors.New("is a directory")

// Opener reveals a file's containing folder in the OS file manager
type Opener interface {
	OpenContainingFolder(path string)
}

// Deleter removes a single file
type Deleter interface {
	DeleteFile(path string) error
}

// Service implements Opener and Deleter and reports results on the event bus
type Service struct {
	bus       eventbus.EventBus
	openerCmd string
	start     func(cmd *exec.Cmd) error
}

// New creates a file operations service. openerCmd overrides the platform
// opener executable when non-empty. bus may be nil.
func New(bus eventbus.EventBus, openerCmd string) *Service {
	if openerCmd == "" {
		openerCmd = defaultOpener
	}
	return &Service{
		bus:       bus,
		openerCmd: openerCmd,
		start:     startDetached,
	}
}

// OpenerCommand returns the executable used to reveal folders
func (s *Service) OpenerCommand() string {
	return s.openerCmd
}

// OpenContainingFolder asks the OS to show the parent directory of path.
// Launch failures are ignored.
func (s *Service) OpenContainingFolder(path string) {
	dir := filepath.Dir(path)
	if err := s.start(exec.Command(s.openerCmd, dir)); err != nil {
		return
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.FolderOpenedEvent{Dir: dir})
	}
}

// DeleteFile removes exactly path. Directories are refused and symlinks are
// removed as links.
func (s *Service) DeleteFile(path string) error {
	err := deleteFile(path)
	if err != nil {
		if s.bus != nil {
			s.bus.Publish(eventbus.DeleteFailedEvent{Path: path, Err: err})
		}
		return err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.FileDeletedEvent{Path: path})
	}
	return nil
}

func deleteFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("failed to delete %s: %w", path, ErrIsDirectory)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// startDetached spawns cmd without waiting and reaps it in the background
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
