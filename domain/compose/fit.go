package compose

import (
	"image"
	"math"

	"github.com/soocke/pixel-overlay-go/domain/align"
)

// ContainRect returns the largest rectangle with src's aspect ratio that fits
// inside box, centered in box ("contain" fit). Images smaller than box are
// scaled up. An empty src or box yields an empty rectangle.
func ContainRect(src image.Point, box image.Rectangle) image.Rectangle {
	bw, bh := box.Dx(), box.Dy()
	if src.X <= 0 || src.Y <= 0 || bw <= 0 || bh <= 0 {
		return image.Rectangle{}
	}
	ratioW := float64(bw) / float64(src.X)
	ratioH := float64(bh) / float64(src.Y)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}
	w := int(math.Round(float64(src.X) * ratio))
	h := int(math.Round(float64(src.Y) * ratio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w > bw {
		w = bw
	}
	if h > bh {
		h = bh
	}
	x0 := box.Min.X + (bw-w)/2
	y0 := box.Min.Y + (bh-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

// OverlayBox is the overlay layer's box: the viewport translated by pos.
// The translation is clamped just past the viewport size so extreme offsets
// cannot overflow; beyond that the layer is fully clipped anyway.
func OverlayBox(viewport image.Rectangle, pos align.Position) image.Rectangle {
	return viewport.Add(clampOffset(viewport, pos))
}

// HitOverlay reports whether p lies on the visible part of the overlay layer.
func HitOverlay(viewport image.Rectangle, pos align.Position, p image.Point) bool {
	return p.In(viewport) && p.In(OverlayBox(viewport, pos))
}

func clampOffset(viewport image.Rectangle, pos align.Position) image.Point {
	limX, limY := viewport.Dx()+1, viewport.Dy()+1
	return image.Pt(clampInt(pos.X, -limX, limX), clampInt(pos.Y, -limY, limY))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
