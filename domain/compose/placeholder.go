package compose

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// drawPlaceholder paints an empty drop-zone: background, dashed rounded border
// and an upload arrow in the middle.
func drawPlaceholder(w, h int, bgHex, borderHex string) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{}), nil
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.Hex(bgHex))

	fw, fh := float64(w), float64(h)
	inset := math.Max(2, math.Min(fw, fh)/40)
	dc.SetHexColor(borderHex)
	dc.SetLineWidth(2)
	dc.SetDash(8, 6)
	dc.DrawRoundedRectangle(inset, inset, fw-2*inset, fh-2*inset, 3*inset)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("compose: placeholder border: %w", err)
	}
	dc.ClearDash()

	cx, cy := fw/2, fh/2
	s := math.Min(fw, fh) / 8
	dc.SetLineWidth(math.Max(1.5, s/8))
	// arrow
	dc.DrawLine(cx, cy+s*0.4, cx, cy-s)
	dc.DrawLine(cx-s*0.45, cy-s*0.55, cx, cy-s)
	dc.DrawLine(cx+s*0.45, cy-s*0.55, cx, cy-s)
	// tray
	dc.MoveTo(cx-s, cy+s*0.2)
	dc.LineTo(cx-s, cy+s*0.8)
	dc.LineTo(cx+s, cy+s*0.8)
	dc.LineTo(cx+s, cy+s*0.2)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("compose: placeholder glyph: %w", err)
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("compose: placeholder flush: %w", err)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out, nil
}
