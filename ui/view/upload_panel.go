package view

import (
	"image"
	"log/slog"

	"github.com/soocke/pixel-overlay-go/domain/source"
	"github.com/soocke/pixel-overlay-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// UploadPanel shows one preview column per slot with an open button.
type UploadPanel interface {
	SetSlotPreview(role source.Role, img image.Image, caption string)
}

type slotWidgets struct {
	preview *LabelWidget
	caption *LabelWidget
	photo   *Img
}

type uploadPanel struct {
	logger *slog.Logger
	slots  [len(source.Roles)]slotWidgets
}

// PreviewW and PreviewH bound the slot preview images.
const (
	PreviewW = 240
	PreviewH = 135
)

// NewUploadPanel builds the slot columns inside a frame gridded at row.
func NewUploadPanel(row, cols int, h Handlers, logger *slog.Logger) UploadPanel {
	p := &uploadPanel{logger: logger}
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(cols), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	blank := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, PreviewW, PreviewH)))
	for i, role := range source.Roles {
		col := i * 2
		title := Label(Txt(slotTitle(role)), Anchor("w"))
		Grid(title, In(frame), Row(0), Column(col), Columnspan(2), Sticky("w"), Padx("0.4m"))

		photo := NewPhoto(Data(blank))
		preview := Label(Image(photo), Borderwidth(1), Relief("sunken"))
		Grid(preview, In(frame), Row(1), Column(col), Columnspan(2), Padx("0.4m"), Pady("0.2m"))

		caption := Label(Txt("No image"), Anchor("w"), Width(36))
		Grid(caption, In(frame), Row(2), Column(col), Columnspan(2), Sticky("w"), Padx("0.4m"))

		open := Button(Txt("Open…"), Command(func() { p.choose(role, h) }))
		Grid(open, In(frame), Row(3), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		if role == source.RoleOverlay {
			capture := Button(Txt("Capture screen"), Command(func() {
				if h.Capture != nil {
					h.Capture()
				}
			}))
			Grid(capture, In(frame), Row(3), Column(col+1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		}
		p.slots[role] = slotWidgets{preview: preview, caption: caption, photo: photo}
	}
	return p
}

func slotTitle(r source.Role) string {
	if r == source.RoleBase {
		return "Base image"
	}
	return "Overlay image"
}

// choose opens a file dialog; cancelling returns no paths and does nothing.
func (p *uploadPanel) choose(role source.Role, h Handlers) {
	if h.Open == nil {
		return
	}
	paths := GetOpenFile(Title("Open " + slotTitle(role)))
	if len(paths) == 0 || paths[0] == "" {
		return
	}
	if p.logger != nil {
		p.logger.Debug("file chosen", "role", role.String(), "path", paths[0])
	}
	h.Open(role, paths[0])
}

func (p *uploadPanel) SetSlotPreview(role source.Role, img image.Image, caption string) {
	if p == nil || int(role) < 0 || int(role) >= len(p.slots) {
		return
	}
	s := &p.slots[role]
	if s.caption != nil {
		s.caption.Configure(Txt(caption))
	}
	if s.preview == nil || img == nil {
		return
	}
	photo := NewPhoto(Data(images.EncodePNG(images.Thumbnail(img, PreviewW, PreviewH))))
	s.preview.Configure(Image(photo))
	if s.photo != nil {
		s.photo.Delete()
	}
	s.photo = photo
}
