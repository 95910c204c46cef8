package compose

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/source"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func resource(role source.Role, img image.Image) *source.ImageResource {
	return source.NewResource(role, img, role.String()+".png", 0, "image/png")
}

func newTestCompositor(t *testing.T, w, h int) *Compositor {
	t.Helper()
	c, err := New(Options{Width: w, Height: h, Background: "#000000", Interpolation: "nearest"}, discardLogger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestContainRect(t *testing.T) {
	box := image.Rect(0, 0, 100, 50)
	cases := []struct {
		src  image.Point
		want image.Rectangle
	}{
		{image.Pt(100, 50), image.Rect(0, 0, 100, 50)},
		{image.Pt(200, 100), image.Rect(0, 0, 100, 50)},
		{image.Pt(10, 10), image.Rect(25, 0, 75, 50)},
		{image.Pt(400, 100), image.Rect(0, 12, 100, 37)},
		{image.Pt(0, 10), image.Rectangle{}},
	}
	for _, tc := range cases {
		if got := ContainRect(tc.src, box); got != tc.want {
			t.Fatalf("ContainRect(%v) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestHitOverlay(t *testing.T) {
	vp := image.Rect(0, 0, 100, 100)
	pos := align.Position{X: 50, Y: 0}
	if HitOverlay(vp, pos, image.Pt(10, 10)) {
		t.Fatalf("point left of shifted overlay should miss")
	}
	if !HitOverlay(vp, pos, image.Pt(60, 10)) {
		t.Fatalf("point on shifted overlay should hit")
	}
	if HitOverlay(vp, pos, image.Pt(120, 10)) {
		t.Fatalf("point outside viewport should miss")
	}
	far := OverlayBox(vp, align.Position{X: 1 << 30, Y: -(1 << 30)})
	if far.Min.X != 101 || far.Min.Y != -101 {
		t.Fatalf("offset not clamped: %v", far)
	}
}

func TestRenderWithoutBothResourcesIsPlaceholder(t *testing.T) {
	c := newTestCompositor(t, 40, 20)
	base := resource(source.RoleBase, solid(40, 20, color.RGBA{R: 255, A: 255}))
	for _, pair := range [][2]*source.ImageResource{{nil, nil}, {base, nil}, {nil, base}} {
		f := c.Render(pair[0], pair[1], align.Position{}, 0.5)
		if f.Blended {
			t.Fatalf("frame blended with a missing resource")
		}
		if f.Image.Bounds() != c.Viewport() {
			t.Fatalf("placeholder bounds %v, want %v", f.Image.Bounds(), c.Viewport())
		}
		f.Release()
	}
}

func TestRenderBlendsAtOpacity(t *testing.T) {
	c := newTestCompositor(t, 4, 4)
	base := resource(source.RoleBase, solid(4, 4, color.RGBA{R: 200, A: 255}))
	ov := resource(source.RoleOverlay, solid(4, 4, color.RGBA{B: 200, A: 255}))

	f := c.Render(base, ov, align.Position{}, 1)
	if !f.Blended {
		t.Fatalf("expected blended frame")
	}
	if got := f.Image.RGBAAt(1, 1); got != (color.RGBA{B: 200, A: 255}) {
		t.Fatalf("opacity 1 pixel = %v", got)
	}
	f.Release()

	f = c.Render(base, ov, align.Position{}, 0)
	if got := f.Image.RGBAAt(1, 1); got != (color.RGBA{R: 200, A: 255}) {
		t.Fatalf("opacity 0 pixel = %v", got)
	}
	f.Release()

	f = c.Render(base, ov, align.Position{}, 0.5)
	got := f.Image.RGBAAt(1, 1)
	if got.R < 95 || got.R > 105 || got.B < 95 || got.B > 105 {
		t.Fatalf("opacity 0.5 pixel = %v", got)
	}
	if f.Opacity != 0.5 {
		t.Fatalf("frame opacity = %v", f.Opacity)
	}
	f.Release()
}

func TestRenderTranslatesOverlayOnly(t *testing.T) {
	c := newTestCompositor(t, 4, 4)
	base := resource(source.RoleBase, solid(4, 4, color.RGBA{R: 200, A: 255}))
	ov := resource(source.RoleOverlay, solid(4, 4, color.RGBA{B: 200, A: 255}))

	f := c.Render(base, ov, align.Position{X: 2, Y: 0}, 1)
	defer f.Release()
	if got := f.Image.RGBAAt(0, 0); got != (color.RGBA{R: 200, A: 255}) {
		t.Fatalf("uncovered pixel should show base, got %v", got)
	}
	if got := f.Image.RGBAAt(3, 3); got != (color.RGBA{B: 200, A: 255}) {
		t.Fatalf("covered pixel should show overlay, got %v", got)
	}
	if f.Position != image.Pt(2, 0) {
		t.Fatalf("frame position = %v", f.Position)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	c := newTestCompositor(t, 32, 24)
	base := resource(source.RoleBase, solid(64, 48, color.RGBA{G: 120, A: 255}))
	ov := resource(source.RoleOverlay, solid(30, 30, color.RGBA{R: 90, B: 30, A: 255}))
	pos := align.Position{X: -5, Y: 7}

	a := c.Render(base, ov, pos, 0.3)
	first := append([]byte(nil), a.Image.Pix...)
	a.Release()
	b := c.Render(base, ov, pos, 0.3)
	defer b.Release()
	if !bytes.Equal(first, b.Image.Pix) {
		t.Fatalf("identical inputs produced different frames")
	}
	hits, misses, _ := c.CacheStats()
	if misses != 2 || hits != 2 {
		t.Fatalf("cache hits/misses = %d/%d, want 2/2", hits, misses)
	}
}

func TestRenderSlot(t *testing.T) {
	c := newTestCompositor(t, 10, 10)
	res := resource(source.RoleBase, solid(20, 10, color.RGBA{R: 255, A: 255}))
	f := c.RenderSlot(res, 10, 10)
	defer f.Release()
	if f.Blended {
		t.Fatalf("slot preview is never blended")
	}
	if got := f.Image.RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("center pixel = %v", got)
	}
	if got := f.Image.RGBAAt(5, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("letterbox pixel = %v", got)
	}
	empty := c.RenderSlot(nil, 10, 10)
	defer empty.Release()
	if empty.Image.Bounds().Dx() != 10 {
		t.Fatalf("placeholder size = %v", empty.Image.Bounds())
	}
}

func TestFrameReleaseIdempotent(t *testing.T) {
	c := newTestCompositor(t, 8, 8)
	f := c.Render(nil, nil, align.Position{}, 1)
	f.Release()
	f.Release()
	if f.Image != nil {
		t.Fatalf("image retained after release")
	}
}

func TestDrawPlaceholder(t *testing.T) {
	img, err := drawPlaceholder(80, 80, "#000000", "#ffffff")
	if err != nil {
		t.Fatalf("drawPlaceholder: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 80, 80) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	// tray baseline runs through the middle column below the centre
	var lit bool
	for y := 44; y <= 52; y++ {
		if c := img.RGBAAt(40, y); c.R > 0 {
			lit = true
		}
	}
	if !lit {
		t.Fatalf("expected glyph strokes to reach the output")
	}
	empty, err := drawPlaceholder(0, 10, "#000000", "#ffffff")
	if err != nil || !empty.Bounds().Empty() {
		t.Fatalf("zero size: %v %v", empty.Bounds(), err)
	}
}
