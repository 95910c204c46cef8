// Command overlayrender composites an overlay image above a base image at a
// given offset and opacity and writes the result as PNG or WebP.
//
//	overlayrender -base design.png -overlay shot.png -dx 31 -dy 15 -opacity 40 -out diff.webp
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/soocke/pixel-overlay-go/config"
	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/compose"
	"github.com/soocke/pixel-overlay-go/domain/export"
	"github.com/soocke/pixel-overlay-go/domain/source"
)

type request struct {
	Base          string  `validate:"required"`
	Overlay       string  `validate:"required"`
	Out           string  `validate:"required"`
	Opacity       float64 `validate:"gte=0,lte=100"`
	Width         int     `validate:"gte=0,lte=16384"`
	Height        int     `validate:"gte=0,lte=16384"`
	Background    string  `validate:"hexcolor"`
	Interpolation string  `validate:"oneof=nearest bilinear catmullrom"`
	DX, DY        int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	req, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "overlayrender:", err)
		return 2
	}
	if err := render(req, logger); err != nil {
		fmt.Fprintln(stderr, "overlayrender:", err)
		return 1
	}
	fmt.Fprintln(stdout, req.Out)
	return 0
}

func parseArgs(args []string, stderr io.Writer) (request, error) {
	def := config.DefaultConfig()
	fs := flag.NewFlagSet("overlayrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var r request
	fs.StringVar(&r.Base, "base", "", "base image path")
	fs.StringVar(&r.Overlay, "overlay", "", "overlay image path")
	fs.StringVar(&r.Out, "out", "", "output path (.png or .webp)")
	fs.IntVar(&r.DX, "dx", 0, "overlay x offset in viewport pixels")
	fs.IntVar(&r.DY, "dy", 0, "overlay y offset in viewport pixels")
	fs.Float64Var(&r.Opacity, "opacity", def.DefaultOpacity*100, "overlay opacity percent (0-100)")
	fs.IntVar(&r.Width, "width", 0, "viewport width (0: base image width)")
	fs.IntVar(&r.Height, "height", 0, "viewport height (0: base image height)")
	fs.StringVar(&r.Background, "bg", def.Background, "background color")
	fs.StringVar(&r.Interpolation, "interp", def.Interpolation, "scaling kernel: nearest, bilinear or catmullrom")
	if err := fs.Parse(args); err != nil {
		return r, err
	}
	if err := validator.New().Struct(r); err != nil {
		return r, fmt.Errorf("invalid arguments: %w", err)
	}
	if _, err := export.FormatFor(r.Out); err != nil {
		return r, err
	}
	return r, nil
}

func render(r request, logger *slog.Logger) error {
	base, err := load(source.RoleBase, r.Base)
	if err != nil {
		return err
	}
	overlay, err := load(source.RoleOverlay, r.Overlay)
	if err != nil {
		return err
	}
	w, h := r.Width, r.Height
	if w == 0 || h == 0 {
		size := base.Bounds().Size()
		w, h = size.X, size.Y
	}
	comp, err := compose.New(compose.Options{
		Width:         w,
		Height:        h,
		Background:    r.Background,
		Interpolation: r.Interpolation,
		CacheSize:     2,
	}, logger)
	if err != nil {
		return err
	}
	f := comp.Render(base, overlay, align.Position{X: r.DX, Y: r.DY}, align.ClampOpacity(r.Opacity/100))
	defer f.Release()
	return export.WriteFile(r.Out, f.Image)
}

func load(role source.Role, path string) (*source.ImageResource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", role, err)
	}
	return source.DecodeFile(role, path, data)
}
