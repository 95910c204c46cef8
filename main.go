package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "modernc.org/tk9.0/themes/azure"

	"github.com/soocke/pixel-overlay-go/app"
	"github.com/soocke/pixel-overlay-go/config"
	"github.com/soocke/pixel-overlay-go/debug"
)

func main() {
	cfgPath := flag.String("config", "", "path to config JSON (default: $PIXEL_OVERLAY_CONFIG or the XDG config dir)")
	basePath := flag.String("base", "", "base image to load at startup")
	overlayPath := flag.String("overlay", "", "overlay image to load at startup")
	flag.Parse()

	// .env first so its values count as environment overrides
	envErr := config.LoadDotEnv()

	path := *cfgPath
	if path == "" {
		path = config.EnvPath()
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "config path:", err)
		}
		path = p
	}

	cfg := config.DefaultConfig()
	var loadErr error
	if path != "" {
		cfg, loadErr = config.Load(path)
	}
	cfg.ApplyEnv()
	_ = cfg.Validate()

	logger, closer := NewLogger(ParseLevel(cfg.LogLevel, cfg.Debug), cfg.LogFile)
	defer closer.Close()
	if envErr != nil {
		logger.Warn("dotenv load failed", "error", envErr)
	}
	if loadErr != nil {
		logger.Warn("config load failed, using defaults", "path", path, "error", loadErr)
	}
	logger.Info("config loaded", "path", path, "viewport_w", cfg.ViewportWidth, "viewport_h", cfg.ViewportHeight)

	application, err := app.NewApp(cfg, logger, app.StartOptions{
		Title:       "Pixel Overlay",
		BasePath:    *basePath,
		OverlayPath: *overlayPath,
		ConfigPath:  path,
	})
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Debug {
		comp := application.Container().Compositor
		debug.StartGoroutineLogger(ctx, 10*time.Second, logger, func() []slog.Attr {
			hits, misses, size := comp.CacheStats()
			return []slog.Attr{
				slog.Uint64("layer_cache_hits", hits),
				slog.Uint64("layer_cache_misses", misses),
				slog.Int("layer_cache_len", size),
			}
		})
	}
	application.Start()
}
