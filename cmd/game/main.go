package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/swordstep/internal/application/game"
	"github.com/younwookim/swordstep/internal/application/replay"
	"github.com/younwookim/swordstep/internal/application/scene/playing"
	"github.com/younwookim/swordstep/internal/infrastructure/config"
	"github.com/younwookim/swordstep/internal/infrastructure/logger"
)

//go:embed configs
var configFS embed.FS

type options struct {
	configDir string
	stage     string
	record    string
	replay    string
	logLevel  string
	logFormat string
	watch     bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configDir, "config", "", "Load configs from this directory instead of the embedded ones")
	flag.StringVar(&o.stage, "stage", "arena", "Stage to load from stages/<name>.yaml")
	flag.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&o.replay, "replay", "", "Replay a recording headless and print a summary")
	flag.StringVar(&o.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
	flag.StringVar(&o.logFormat, "log-format", "", "Override logging.format (console, text, json)")
	flag.BoolVar(&o.watch, "watch", false, "Reload tuning.yaml on change (requires -config)")
	flag.Parse()
	return o
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func newLogger(o options, cfg config.LoggingConfig) *slog.Logger {
	if o.logLevel != "" {
		cfg.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Format = o.logFormat
	}
	return logger.New(logger.Config{Level: cfg.Level, Format: cfg.Format})
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(o options) error {
	loader, err := newLoader(o.configDir)
	if err != nil {
		return err
	}

	if o.replay != "" {
		data, err := replay.LoadReplay(o.replay)
		if err != nil {
			return err
		}
		cfg, err := loader.LoadAll(data.Stage)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log := newLogger(o, cfg.Tuning.Logging)
		_, err = runReplay(cfg, data, log)
		return err
	}

	cfg, err := loader.LoadAll(o.stage)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := newLogger(o, cfg.Tuning.Logging)

	opts := playing.Options{RecordPath: o.record, Loader: loader, Logger: log}
	if o.watch {
		if o.configDir == "" {
			log.Warn("hot reload needs -config; embedded configs are read-only")
		} else {
			watcher, err := config.NewWatcher(o.configDir)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", o.configDir, err)
			}
			opts.Watcher = watcher
			log.Info("watching configs", "dir", o.configDir)
		}
	}

	scene, err := playing.New(cfg, opts)
	if err != nil {
		if opts.Watcher != nil {
			_ = opts.Watcher.Close()
		}
		return err
	}

	display := cfg.Tuning.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.TickRate)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Swordstep")
	ebiten.SetTPS(display.TickRate)

	return ebiten.RunGame(g)
}
