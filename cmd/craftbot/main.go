package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/tundrabyte/craftlink/internal/config"
	"github.com/tundrabyte/craftlink/internal/db"
	"github.com/tundrabyte/craftlink/internal/journal"
	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/session"
)

const ConfigPath = "config/craftbot.yaml"

const reconnectDelay = 3 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("CRAFTLINK_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadClient(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Info("craftbot starting", "server", cfg.ServerHost, "port", cfg.ServerPort, "user", cfg.Username)

	if cfg.Profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// Optional journal database
	var store journal.Store
	if cfg.Journal.Enabled {
		database, err := db.New(ctx, cfg.Journal.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to journal database: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("running journal migrations: %w", err)
		}
		slog.Info("journal database ready")
		store = database
	}

	// Run sessions until shutdown, reconnecting after each disconnect.
	for {
		err := runSession(ctx, cfg, store)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			slog.Warn("session ended", "err", err)
		} else {
			slog.Info("session ended")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

// runSession connects, plays one session to completion and returns its
// terminating error.
func runSession(ctx context.Context, cfg config.Client, store journal.Store) error {
	tr := newLoopback(cfg.Username)
	s := session.New(tr, session.Options{
		Profile:         model.OfflineProfile(cfg.Username),
		ServerHost:      cfg.ServerHost,
		ServerPort:      cfg.ServerPort,
		ProtocolVersion: cfg.ProtocolVersion,
		Brand:           cfg.Brand,
		Locale:          cfg.Locale,
		ViewDistance:    cfg.ViewDistance,
		TickInterval:    cfg.TickInterval(),
	})

	if store != nil {
		journal.NewRecorder(store).Register(s)
	}
	s.AddSystem(0, &wanderer{})
	s.OnPhaseChange(func(c session.PhaseChange) {
		slog.Debug("phase change", "from", c.From, "to", c.To)
	})
	s.OnDisconnect(func(ev session.DisconnectEvent) {
		slog.Info("disconnected", "kind", ev.Kind, "reason", ev.Reason)
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Run(gctx) })
	g.Go(func() error { tr.serve(gctx); return nil })
	return g.Wait()
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
