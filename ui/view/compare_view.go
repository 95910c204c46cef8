package view

import (
	"image"

	"github.com/soocke/pixel-overlay-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CompareView shows the composited frame and forwards pointer input in
// viewport pixel coordinates.
type CompareView interface {
	ShowFrame(img image.Image, active bool)
}

type compareView struct {
	label *LabelWidget
	hint  *LabelWidget
	photo *Img // current photo, deleted when replaced
}

const (
	hintInactive = "Load a base and an overlay image to compare"
	hintActive   = "Drag the overlay or use the arrow keys (Shift for larger steps)"
)

// NewCompareView creates the viewport label at row of the root grid, spanning
// cols columns, with a hint line below it. The label has no border or padding
// so event coordinates map 1:1 onto viewport pixels.
func NewCompareView(row, cols, width, height int, h Handlers) CompareView {
	blank := image.NewRGBA(image.Rect(0, 0, width, height))
	photo := NewPhoto(Data(images.EncodePNG(blank)))
	lbl := Label(Image(photo), Borderwidth(0), Padx(0), Pady(0))
	Grid(lbl, Row(row), Column(0), Columnspan(cols), Padx("0.4m"), Pady("0.4m"))
	hint := Label(Txt(hintInactive), Anchor("w"))
	Grid(hint, Row(row+1), Column(0), Columnspan(cols), Sticky("w"), Padx("0.4m"))
	v := &compareView{label: lbl, hint: hint, photo: photo}

	Bind(lbl, "<ButtonPress-1>", Command(func(e *Event) {
		if h.PointerDown != nil {
			h.PointerDown(e.X, e.Y)
		}
	}))
	Bind(lbl, "<B1-Motion>", Command(func(e *Event) {
		if h.PointerMove != nil {
			h.PointerMove(e.X, e.Y)
		}
	}))
	// Release anywhere (Tk delivers it to the pressed widget) and leaving the
	// label both end a drag.
	Bind(lbl, "<ButtonRelease-1>", Command(func() {
		if h.PointerUp != nil {
			h.PointerUp()
		}
	}))
	Bind(lbl, "<Leave>", Command(func() {
		if h.PointerLeave != nil {
			h.PointerLeave()
		}
	}))
	return v
}

func (v *compareView) ShowFrame(img image.Image, active bool) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(photo))
	if v.hint != nil {
		text := hintInactive
		if active {
			text = hintActive
		}
		v.hint.Configure(Txt(text))
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = photo
}
