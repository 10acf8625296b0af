package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/roadmap/internal/cli"
	"github.com/alexanderramin/roadmap/internal/config"
	"github.com/alexanderramin/roadmap/internal/importer"
	"github.com/alexanderramin/roadmap/internal/roadmap"
	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	snap, err := initialSnapshot(cfg)
	if err != nil {
		return err
	}

	store := roadmap.NewStore(snap, roadmap.WithIDGenerator(idGenerator(cfg, snap)))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Phases:  service.NewPhaseService(store, observer),
		Tasks:   service.NewTaskService(store, observer),
		Roadmap: service.NewRoadmapService(store, observer),
		// Only a terminal on stdin gets the shell for a bare `roadmap`.
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}

// initialSnapshot picks the session's starting roadmap: the seed document
// when one is configured, otherwise an empty or demo roadmap.
func initialSnapshot(cfg config.Config) (roadmap.Snapshot, error) {
	switch {
	case cfg.SeedPath != "":
		doc, err := importer.Load(cfg.SeedPath)
		if err != nil {
			return roadmap.Snapshot{}, fmt.Errorf("loading seed: %w", err)
		}
		snap, err := importer.ToSnapshot(doc)
		if err != nil {
			return roadmap.Snapshot{}, fmt.Errorf("seed %s: %w", cfg.SeedPath, err)
		}
		return snap, nil
	case cfg.StartEmpty:
		return roadmap.Empty(), nil
	default:
		return roadmap.DemoSnapshot(), nil
	}
}

func idGenerator(cfg config.Config, snap roadmap.Snapshot) roadmap.IDGenerator {
	if cfg.IDStrategy == config.IDUUID {
		return roadmap.UUIDIDs{}
	}
	return roadmap.NewSequenceIDs(snap)
}
