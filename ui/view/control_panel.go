package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/export"
	"github.com/soocke/pixel-overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ControlPanel holds the opacity slider and entry, nudge pad, readouts and actions.
type ControlPanel interface {
	SetReadout(opacity, position string)
	SetDragLabel(text string)
	// OwnsArrowKeys reports whether the widget at path uses arrow keys itself.
	OwnsArrowKeys(path string) bool
}

type controlPanel struct {
	opacityScale *TScaleWidget
	opacityEntry *TEntryWidget
	opacityLbl   *TLabelWidget
	positionLbl  *TLabelWidget
	dragLbl      *LabelWidget
	lastOpacity  string
}

// NewControlPanel builds the panel in column col of row. The slider applies
// opacity while it moves; the entry applies on Apply or Return. Unparseable
// entry input is reported through onInvalid and the entry reverts.
func NewControlPanel(row, col int, initialPercent string, h Handlers, onInvalid func(string)) ControlPanel {
	v := &controlPanel{lastOpacity: initialPercent}
	frame := Frame()
	Grid(frame, Row(row), Column(col), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	r := 0

	// Opacity slider
	Grid(Label(Txt("Opacity"), Anchor("w")), In(frame), Row(r), Column(0), Sticky("w"), Padx("0.2m"))
	v.opacityScale = TScale(From(0), To(100), Orient("horizontal"), Length("40m"),
		Value(percentValue(initialPercent)), Command(func() {
			if h.OpacityPercent == nil {
				return
			}
			p, err := strconv.ParseFloat(strings.TrimSpace(v.opacityScale.Get()), 64)
			if err != nil {
				return
			}
			h.OpacityPercent(math.Round(p))
		}))
	Grid(v.opacityScale, In(frame), Row(r), Column(1), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.15m"))
	r++

	// Opacity entry
	Grid(Label(Txt("Exact %"), Anchor("w")), In(frame), Row(r), Column(0), Sticky("w"), Padx("0.2m"))
	v.opacityEntry = TEntry(Width(6), Textvariable(percentValue(initialPercent)))
	Grid(v.opacityEntry, In(frame), Row(r), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.15m"))
	apply := func() {
		text := strings.TrimSpace(v.opacityEntry.Textvariable())
		if h.Opacity == nil {
			return
		}
		if h.Opacity(text) {
			return
		}
		if onInvalid != nil {
			onInvalid(text)
		}
		v.opacityEntry.Configure(Textvariable(percentValue(v.lastOpacity)))
	}
	Grid(Button(Txt("Apply"), Command(apply)), In(frame), Row(r), Column(2), Sticky("we"), Padx("0.2m"))
	Bind(v.opacityEntry, "<Return>", Command(apply))
	r++

	// Readouts
	v.opacityLbl = TLabel(Txt("Opacity: "+initialPercent), Style(theme.StyleReadoutLabel))
	Grid(v.opacityLbl, In(frame), Row(r), Column(0), Columnspan(3), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	r++
	v.positionLbl = TLabel(Txt("Offset: (0,0)"), Style(theme.StyleReadoutLabel))
	Grid(v.positionLbl, In(frame), Row(r), Column(0), Columnspan(3), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	r++
	v.dragLbl = Label(Txt("Drag: idle"), Borderwidth(1), Relief("ridge"))
	Grid(v.dragLbl, In(frame), Row(r), Column(0), Columnspan(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	r++

	// Nudge pad
	nudge := func(dir align.Direction) func() {
		return func() {
			if h.Nudge != nil {
				h.Nudge(dir, false)
			}
		}
	}
	Grid(Button(Txt("↑"), Command(nudge(align.Up))), In(frame), Row(r), Column(1), Sticky("we"), Pady("0.2m"))
	r++
	Grid(Button(Txt("←"), Command(nudge(align.Left))), In(frame), Row(r), Column(0), Sticky("we"))
	Grid(Button(Txt("Reset"), Command(func() {
		if h.Reset != nil {
			h.Reset()
		}
	})), In(frame), Row(r), Column(1), Sticky("we"))
	Grid(Button(Txt("→"), Command(nudge(align.Right))), In(frame), Row(r), Column(2), Sticky("we"))
	r++
	Grid(Button(Txt("↓"), Command(nudge(align.Down))), In(frame), Row(r), Column(1), Sticky("we"), Pady("0.2m"))
	r++

	// Actions
	exportBtn := func(label string, f export.Format) *TButtonWidget {
		return TButton(Txt(label), Style(theme.StylePrimaryButton), Command(func() {
			if h.Export != nil {
				h.Export(f)
			}
		}))
	}
	Grid(exportBtn("Export PNG", export.FormatPNG), In(frame), Row(r), Column(0), Columnspan(3), Sticky("we"), Pady("0.2m"))
	r++
	Grid(exportBtn("Export WebP", export.FormatWebP), In(frame), Row(r), Column(0), Columnspan(3), Sticky("we"), Pady("0.2m"))
	r++
	var themeBtn *TButtonWidget
	themeBtn = TButton(Txt(theme.ToggleLabel(theme.IsDark())), Command(func() {
		if h.Theme == nil {
			return
		}
		h.Theme(!theme.IsDark())
		themeBtn.Configure(Txt(theme.ToggleLabel(theme.IsDark())))
	}))
	Grid(themeBtn, In(frame), Row(r), Column(0), Columnspan(3), Sticky("we"), Pady("0.2m"))
	r++
	exit := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(func() {
		if h.Exit != nil {
			h.Exit()
		}
	}))
	Grid(exit, In(frame), Row(r), Column(0), Columnspan(3), Sticky("we"), Pady("0.6m"))
	return v
}

// percentValue strips the percent sign from a readout such as "40%".
func percentValue(readout string) string {
	return strings.TrimSuffix(strings.TrimSpace(readout), "%")
}

// SetReadout updates the labels and, when the opacity changed, moves the
// slider and entry to match.
func (v *controlPanel) SetReadout(opacity, position string) {
	if v == nil {
		return
	}
	if opacity != v.lastOpacity {
		if v.opacityScale != nil {
			v.opacityScale.Configure(Value(percentValue(opacity)))
		}
		if v.opacityEntry != nil {
			v.opacityEntry.Configure(Textvariable(percentValue(opacity)))
		}
	}
	v.lastOpacity = opacity
	if v.opacityLbl != nil {
		v.opacityLbl.Configure(Txt("Opacity: " + opacity))
	}
	if v.positionLbl != nil {
		v.positionLbl.Configure(Txt("Offset: " + position))
	}
}

func (v *controlPanel) OwnsArrowKeys(path string) bool {
	if v == nil || path == "" {
		return false
	}
	return (v.opacityScale != nil && path == v.opacityScale.String()) ||
		(v.opacityEntry != nil && path == v.opacityEntry.String())
}

func (v *controlPanel) SetDragLabel(text string) {
	if v != nil && v.dragLbl != nil {
		v.dragLbl.Configure(Txt(text))
	}
}
