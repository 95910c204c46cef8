package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for the comparison view and app behavior.
// Fields may be loaded from a JSON file and overridden by environment variables and flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Comparison viewport (pixels). Both layers are fitted into this box.
	ViewportWidth  int `json:"viewport_width"`
	ViewportHeight int `json:"viewport_height"`

	// Colors (hex, "#rrggbb")
	Background        string `json:"background"`
	PlaceholderBorder string `json:"placeholder_border"`

	// Alignment controls
	DefaultOpacity float64 `json:"default_opacity"`
	NudgeStep      int     `json:"nudge_step"`
	LargeNudgeStep int     `json:"large_nudge_step"`

	// Rendering
	Interpolation  string `json:"interpolation"`
	LayerCacheSize int    `json:"layer_cache_size"`
	TickMillis     int    `json:"tick_ms"`

	ExportDir string `json:"export_dir"`
	DarkMode  bool   `json:"dark_mode"`
}

const appDir = "pixel-overlay"

// Interpolation kernels accepted in Config.Interpolation.
const (
	InterpNearest    = "nearest"
	InterpBilinear   = "bilinear"
	InterpCatmullRom = "catmullrom"
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		LogLevel:          "info",
		LogFile:           "",
		ViewportWidth:     960,
		ViewportHeight:    540,
		Background:        "#111111",
		PlaceholderBorder: "#3f3f46",
		DefaultOpacity:    0.5,
		NudgeStep:         1,
		LargeNudgeStep:    10,
		Interpolation:     InterpCatmullRom,
		LayerCacheSize:    8,
		TickMillis:        16,
		ExportDir:         ".",
		DarkMode:          true,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.ViewportWidth < 64 {
		c.ViewportWidth = 960
	}
	if c.ViewportHeight < 36 {
		c.ViewportHeight = 540
	}
	if !isHexColor(c.Background) {
		c.Background = "#111111"
	}
	if !isHexColor(c.PlaceholderBorder) {
		c.PlaceholderBorder = "#3f3f46"
	}
	if math.IsNaN(c.DefaultOpacity) || c.DefaultOpacity < 0 || c.DefaultOpacity > 1 {
		c.DefaultOpacity = 0.5
	}
	if c.NudgeStep <= 0 {
		c.NudgeStep = 1
	}
	if c.LargeNudgeStep < c.NudgeStep {
		c.LargeNudgeStep = c.NudgeStep * 10
	}
	switch strings.ToLower(c.Interpolation) {
	case InterpNearest, InterpBilinear, InterpCatmullRom:
		c.Interpolation = strings.ToLower(c.Interpolation)
	default:
		c.Interpolation = InterpCatmullRom
	}
	if c.LayerCacheSize <= 0 {
		c.LayerCacheSize = 8
	}
	if c.TickMillis <= 0 {
		c.TickMillis = 16
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "info"
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	return nil
}

// DefaultPath returns the config file location under the user's XDG config dir,
// creating parent directories as needed.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join(appDir, "config.json"))
	if err != nil {
		return "", fmt.Errorf("config: resolve default path: %w", err)
	}
	return p, nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Update loads the file at path, applies mutate and writes it back. Only the
// stored settings change; environment overrides applied in memory elsewhere
// are not written.
func Update(path string, mutate func(*Config)) error {
	if path == "" {
		return fmt.Errorf("config: update: no path")
	}
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	if mutate != nil {
		mutate(cfg)
	}
	return cfg.Save(path)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
