package compose

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/source"
)

// Options configures a Compositor.
type Options struct {
	Width, Height     int
	Background        string // hex "#rrggbb"
	PlaceholderBorder string // hex "#rrggbb"
	Interpolation     string // nearest | bilinear | catmullrom
	CacheSize         int
}

// Compositor renders the comparison viewport: base beneath, overlay above,
// translated by the alignment offset and blended with uniform alpha.
//
// Render output depends only on its arguments (and Options); the layer and
// placeholder caches hold derived data that never changes once stored.
// Not safe for concurrent use.
type Compositor struct {
	opts         Options
	bg           color.RGBA
	layers       *layerCache
	placeholders map[image.Point]*image.RGBA
	logger       *slog.Logger
}

// New constructs a Compositor. Missing sizes fall back to 960x540.
func New(opts Options, logger *slog.Logger) (*Compositor, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 960, 540
	}
	if opts.Background == "" {
		opts.Background = "#111111"
	}
	if opts.PlaceholderBorder == "" {
		opts.PlaceholderBorder = "#3f3f46"
	}
	lc, err := newLayerCache(opts.CacheSize, interpolator(opts.Interpolation))
	if err != nil {
		return nil, fmt.Errorf("compose: layer cache: %w", err)
	}
	bg := color.RGBAModel.Convert(gg.Hex(opts.Background).Color()).(color.RGBA)
	bg.A = 0xff
	return &Compositor{
		opts:         opts,
		bg:           bg,
		layers:       lc,
		placeholders: make(map[image.Point]*image.RGBA),
		logger:       logger,
	}, nil
}

// Viewport returns the comparison viewport rectangle, origin (0,0).
func (c *Compositor) Viewport() image.Rectangle {
	return image.Rect(0, 0, c.opts.Width, c.opts.Height)
}

// Render produces the comparison frame. If either resource is nil the result
// is a placeholder frame with Blended == false.
func (c *Compositor) Render(base, overlay *source.ImageResource, pos align.Position, opacity float64) *Frame {
	vp := c.Viewport()
	if !usable(base) || !usable(overlay) {
		return c.placeholderFrame(vp.Size())
	}
	dst := acquireFrame(vp)
	draw.Draw(dst, vp, image.NewUniform(c.bg), image.Point{}, draw.Src)

	// Base: fixed reference at native offset.
	baseRect := ContainRect(base.Bounds().Size(), vp)
	if !baseRect.Empty() {
		layer := c.layers.fitted(base.ID, base.Image, baseRect.Dx(), baseRect.Dy())
		draw.Draw(dst, baseRect, layer, image.Point{}, draw.Over)
	}

	// Overlay: same fitted box as the base, then translated.
	opacity = align.ClampOpacity(opacity)
	alpha := uint8(math.Round(opacity * 255))
	box := OverlayBox(vp, pos)
	ovRect := ContainRect(overlay.Bounds().Size(), box)
	if alpha > 0 && !ovRect.Empty() && ovRect.Overlaps(vp) {
		layer := c.layers.fitted(overlay.ID, overlay.Image, ovRect.Dx(), ovRect.Dy())
		mask := image.NewUniform(color.Alpha{A: alpha})
		draw.DrawMask(dst, ovRect, layer, image.Point{}, mask, image.Point{}, draw.Over)
	}

	return &Frame{
		Image:    dst,
		Blended:  true,
		Position: image.Pt(pos.X, pos.Y),
		Opacity:  opacity,
		pooled:   true,
	}
}

// RenderSlot renders a single resource contain-fit into a w x h preview, or the
// placeholder when res is nil. Used for the per-slot upload previews.
func (c *Compositor) RenderSlot(res *source.ImageResource, w, h int) *Frame {
	if w <= 0 || h <= 0 {
		return &Frame{Image: image.NewRGBA(image.Rectangle{})}
	}
	if !usable(res) {
		return c.placeholderFrame(image.Pt(w, h))
	}
	box := image.Rect(0, 0, w, h)
	dst := acquireFrame(box)
	draw.Draw(dst, box, image.NewUniform(c.bg), image.Point{}, draw.Src)
	if r := ContainRect(res.Bounds().Size(), box); !r.Empty() {
		layer := c.layers.fitted(res.ID, res.Image, r.Dx(), r.Dy())
		draw.Draw(dst, r, layer, image.Point{}, draw.Over)
	}
	return &Frame{Image: dst, Opacity: 1, pooled: true}
}

// placeholderFrame copies the cached placeholder for size into a pooled buffer.
func (c *Compositor) placeholderFrame(size image.Point) *Frame {
	ph, ok := c.placeholders[size]
	if !ok {
		var err error
		ph, err = drawPlaceholder(size.X, size.Y, c.opts.Background, c.opts.PlaceholderBorder)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("placeholder render failed", "error", err)
			}
			ph = image.NewRGBA(image.Rectangle{Max: size})
			draw.Draw(ph, ph.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
		}
		c.placeholders[size] = ph
	}
	dst := acquireFrame(image.Rectangle{Max: size})
	copy(dst.Pix, ph.Pix)
	return &Frame{Image: dst, pooled: true}
}

// CacheStats reports layer cache hits, misses and resident entries.
func (c *Compositor) CacheStats() (hits, misses uint64, size int) { return c.layers.stats() }

func usable(r *source.ImageResource) bool {
	return r != nil && r.Image != nil && !r.Bounds().Empty()
}
