package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognised by ApplyEnv / EnvPath.
const (
	EnvConfigPath = "PIXEL_OVERLAY_CONFIG"
	EnvDebug      = "PIXEL_OVERLAY_DEBUG"
	EnvLogLevel   = "PIXEL_OVERLAY_LOG_LEVEL"
	EnvLogFile    = "PIXEL_OVERLAY_LOG_FILE"
	EnvExportDir  = "PIXEL_OVERLAY_EXPORT_DIR"
)

// LoadDotEnv loads variables from the given .env files (default ".env") into the
// process environment without overriding variables that are already set.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load env %s: %w", f, err)
		}
	}
	return nil
}

// EnvPath returns the config path from PIXEL_OVERLAY_CONFIG, or "" when unset.
func EnvPath() string { return strings.TrimSpace(os.Getenv(EnvConfigPath)) }

// ApplyEnv overrides cfg fields from PIXEL_OVERLAY_* variables. Unparseable values are skipped.
func (c *Config) ApplyEnv() {
	if c == nil {
		return
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Debug = b
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportDir)); v != "" {
		c.ExportDir = v
	}
	_ = c.Validate()
}
