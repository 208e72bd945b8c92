package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dd0wney/harmonia/pkg/canvas"
	"github.com/dd0wney/harmonia/pkg/config"
	"github.com/dd0wney/harmonia/pkg/editor"
	"github.com/dd0wney/harmonia/pkg/logging"
	"github.com/dd0wney/harmonia/pkg/metrics"
	"github.com/dd0wney/harmonia/pkg/storage"
	"github.com/dd0wney/harmonia/pkg/tui"
	"github.com/dd0wney/harmonia/pkg/viewport"
	"github.com/dd0wney/harmonia/pkg/visualization"
)

func main() {
	configPath := flag.String("config", "harmonia.yaml", "Path to YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "harmonia: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	started := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	level := logging.LevelFromEnv(logging.ParseLevel(cfg.Logging.Level))
	logger, closer, err := logging.OpenFile(cfg.Logging.File, level)
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.SetDefaultLogger(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := metrics.NewRegistry()
	if cfg.Metrics.Addr != "" {
		if err := serveMetrics(ctx, reg, cfg.Metrics.Addr, started, logger); err != nil {
			return fmt.Errorf("failed to start metrics endpoint: %w", err)
		}
	}

	ed, err := newEditor(cfg, reg, logger)
	if err != nil {
		return err
	}

	cv := canvas.New(viewport.Rect{}, canvas.WithGrid(visualization.GridConfig{
		Spacing:           cfg.Grid.Spacing,
		MinVisibleSpacing: cfg.Grid.MinVisibleSpacing,
		MaxCells:          int64(cfg.Grid.MaxCells),
	}))

	model := tui.New(ed, cv,
		tui.WithTitle(cfg.Window.Title),
		tui.WithScrollStep(cfg.Viewport.ScrollStep),
		tui.WithLogger(logger),
	)

	logger.Info("Harmonia starting",
		logging.String("config", configPath),
		logging.Session(ed.Session()),
		logging.Int("seed_nodes", ed.Graph().NodeCount()),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Info("Harmonia stopped", logging.Duration("uptime", time.Since(started)))
	return nil
}

// newEditor builds the graph store and editor and places the configured
// seed nodes through the same path a menu selection uses.
func newEditor(cfg *config.Config, reg *metrics.Registry, logger logging.Logger) (*editor.Editor, error) {
	vp, err := viewport.NewWithLimits(cfg.Viewport.MinZoom, cfg.Viewport.MaxZoom)
	if err != nil {
		return nil, err
	}

	graph := storage.NewGraphStore(
		storage.WithLogger(logger),
		storage.WithObserver(reg),
	)
	ed := editor.New(graph,
		editor.WithLogger(logger),
		editor.WithRecorder(reg),
		editor.WithSensitivity(cfg.Viewport.ZoomSensitivity),
		editor.WithViewport(vp),
	)

	seeds, err := cfg.SeedTemplates()
	if err != nil {
		return nil, err
	}
	for i, t := range seeds {
		at := viewport.V(cfg.Seed[i].X, cfg.Seed[i].Y)
		if _, err := ed.Place(t, at); err != nil {
			return nil, fmt.Errorf("failed to place seed node %d: %w", i, err)
		}
	}
	return ed, nil
}

func serveMetrics(ctx context.Context, reg *metrics.Registry, addr string, started time.Time, logger logging.Logger) error {
	bound, done, err := reg.Serve(ctx, addr)
	if err != nil {
		return err
	}
	logger.Info("metrics endpoint listening", logging.String("addr", bound.String()))

	go func() {
		if err := <-done; err != nil {
			logger.Error("metrics endpoint stopped", logging.Error(err))
		}
	}()

	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			reg.UpdateSystemMetrics(started)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return nil
}
