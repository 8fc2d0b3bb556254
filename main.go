package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"filefinder/internal/config"
	"filefinder/internal/eventbus"
	"filefinder/internal/ui"
)

var (
	configPath string
	logPath    string
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filefinder [dir]",
		Short: "Find files by name and act on them",
		Long: `filefinder searches a folder tree for entries whose name contains a
query and lets you reveal, preview, copy or delete the results.

Without a directory argument, pick a folder from inside the app with o.`,
		Example: `filefinder ~/Downloads`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runTUI,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&logPath, "log-file", defaultLogPath(), "diagnostic log destination")

	cmd.AddCommand(newListCmd(), newConfigCmd())
	return cmd
}

func defaultLogPath() string {
	return filepath.Join(os.TempDir(), "filefinder.log")
}

// setupLogging sends the standard logger to path so nothing reaches the
// terminal while the TUI owns it
func setupLogging(path string) io.Closer {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(logFile)
	return logFile
}

// subscribeLogging logs domain events published on the bus
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ScanCompletedEvent); ok {
			s := ev.Summary
			log.Printf("Scan of %s for %q: %d matches, %d skipped in %s", s.Root, s.Query, s.Matches, s.Skipped, s.Duration)
		}
	})
	bus.Subscribe(eventbus.EventFileDeleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FileDeletedEvent); ok {
			log.Printf("Deleted %s", ev.Path)
		}
	})
	bus.Subscribe(eventbus.EventDeleteFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.DeleteFailedEvent); ok {
			log.Printf("Delete of %s failed: %v", ev.Path, ev.Err)
		}
	})
	bus.Subscribe(eventbus.EventFolderOpened, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FolderOpenedEvent); ok {
			log.Printf("Opened folder %s", ev.Dir)
		}
	})
	bus.Subscribe(eventbus.EventRootSelected, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.RootSelectedEvent); ok {
			log.Printf("Search root is now %s", ev.Root)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			if ev.Existing {
				log.Printf("Config loaded from %s", ev.Path)
			} else {
				log.Printf("No config at %s, using defaults", ev.Path)
			}
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", ev.Message, ev.Err)
		}
	})
}

// loadConfig loads the config file, falling back to defaults when it cannot
// be read
func loadConfig(bus eventbus.EventBus) *config.Config {
	svc := config.NewConfigService(configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "failed to load config " + svc.Path() + ", using defaults", Err: err})
		return config.DefaultConfig()
	}
	return cfg
}

func runTUI(cmd *cobra.Command, args []string) error {
	var root string
	if len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", args[0], err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", abs, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", abs)
		}
		root = abs
	}

	if closer := setupLogging(logPath); closer != nil {
		defer closer.Close()
	}

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	cfg := loadConfig(bus)

	log.Printf("Creating UI model...")
	model := ui.NewModel(bus, cfg, root)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	model.SetProgram(p)

	if os.Getenv("FILEFINDER_E2E_TEST") == "1" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
