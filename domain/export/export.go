// Package export writes rendered comparison frames to disk.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

var ErrUnsupportedFormat = errors.New("export: unsupported format")

// FormatFor picks the encoder from a file name's extension.
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	if img == nil {
		return errors.New("export: nil image")
	}
	switch f {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		return enc.Encode(w, img)
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("export: webp encode: %w", err)
		}
		return nil
	default:
		return ErrUnsupportedFormat
	}
}

// WriteFile encodes img into path, choosing the format by extension. Parent
// directories are created as needed.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", filepath.Dir(path), err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		_ = os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

// TimestampedName returns "overlay-20060102-150405.<ext>" inside dir.
func TimestampedName(dir string, at time.Time, f Format) string {
	return filepath.Join(dir, "overlay-"+at.Format("20060102-150405")+f.Ext())
}
