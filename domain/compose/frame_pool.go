package compose

import (
	"image"
	"sync"
)

// Reusable destination buffers for rendered frames. A frame redraws every
// pixel it owns, so recycled buffers never leak stale content into a new frame.

var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns an RGBA image sized to rect. Pix length is exactly
// rect area * 4 and Stride is width*4. Contents are unspecified.
func acquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		img = &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	} else {
		img.Stride = w * 4
		img.Rect = rect
		img.Pix = img.Pix[:needed]
	}
	return img
}

// recycleFrame returns img to the pool. The caller must not touch img afterwards.
func recycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}

// Frame is one rendered viewport.
type Frame struct {
	// Image holds the pixels; valid until Release.
	Image *image.RGBA
	// Blended is true only when both base and overlay were composited.
	Blended  bool
	Position image.Point
	Opacity  float64

	pooled bool
}

// Release hands the pixel buffer back for reuse. Safe to call more than once.
func (f *Frame) Release() {
	if f == nil || !f.pooled {
		return
	}
	f.pooled = false
	recycleFrame(f.Image)
	f.Image = nil
}
