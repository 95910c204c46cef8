package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/pixel-overlay-go/config"
	"github.com/soocke/pixel-overlay-go/domain/export"
	"github.com/soocke/pixel-overlay-go/domain/source"
	"github.com/soocke/pixel-overlay-go/ui/presenter"
	"github.com/soocke/pixel-overlay-go/ui/theme"
	"github.com/soocke/pixel-overlay-go/ui/view"
)

// StartOptions are startup inputs from the command line.
type StartOptions struct {
	Title       string
	BasePath    string
	OverlayPath string
	// ConfigPath receives persisted UI preferences; empty disables saving.
	ConfigPath string
}

// Application owns the Tk main window and the tick that drives the presenters.
type Application struct {
	cfg     *config.Config
	logger  *slog.Logger
	c       *AppContainer
	opts    StartOptions
	tick    time.Duration
	afterID string
}

func NewApp(cfg *config.Config, logger *slog.Logger, opts StartOptions) (*Application, error) {
	c, err := BuildContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	if opts.Title == "" {
		opts.Title = "Pixel Overlay"
	}
	tick := time.Duration(c.Config.TickMillis) * time.Millisecond
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	return &Application{cfg: c.Config, logger: logger, c: c, opts: opts, tick: tick}, nil
}

// Container exposes the assembled components.
func (a *Application) Container() *AppContainer { return a.c }

// Start builds the window and blocks in the Tk event loop until exit.
func (a *Application) Start() {
	vp := a.c.Viewport()
	App.WmTitle(a.opts.Title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+80+60", vp.Dx()+260, vp.Dy()+view.PreviewH+180))

	a.c.RootView.Build(a.handlers())
	a.c.UploadPresenter.Refresh()
	a.c.UploadPresenter.Open(source.RoleBase, a.opts.BasePath)
	a.c.UploadPresenter.Open(source.RoleOverlay, a.opts.OverlayPath)

	a.c.Loop = presenter.NewLoop(a.c.UploadPresenter, a.c.DragPresenter, a.c.RenderPresenter, a.scheduleUpdate)
	a.scheduleUpdate()
	if a.logger != nil {
		a.logger.Info("window started", "viewport", vp.Size().String(), "tick", a.tick.String())
	}
	App.Wait()
}

func (a *Application) handlers() view.Handlers {
	ap := a.c.AlignPresenter
	up := a.c.UploadPresenter
	return view.Handlers{
		Open:           up.Open,
		Capture:        up.CaptureScreen,
		Export:         a.export,
		Exit:           a.exitHandler,
		Nudge:          ap.Nudge,
		Reset:          ap.Reset,
		Theme:          a.setTheme,
		Opacity:        ap.SetOpacityText,
		OpacityPercent: ap.SetOpacityPercent,
		PointerDown:    ap.PointerDown,
		PointerMove:    ap.PointerMove,
		PointerUp:      ap.PointerUp,
		PointerLeave:   ap.PointerLeave,
	}
}

func (a *Application) export(f export.Format) {
	path, err := a.c.RenderPresenter.Export(a.cfg.ExportDir, f, time.Now())
	switch {
	case errors.Is(err, presenter.ErrNothingToExport):
		a.c.UI.SetStatus("Load both images before exporting")
	case err != nil:
		if a.logger != nil {
			a.logger.Error("export failed", "format", f.String(), "error", err)
		}
		a.c.UI.SetStatus("Export failed: " + err.Error())
	default:
		a.c.UI.SetStatus("Exported " + path)
	}
}

// setTheme switches the palette and stores the choice in the config file.
func (a *Application) setTheme(dark bool) {
	theme.SetDark(dark)
	a.cfg.DarkMode = dark
	if a.opts.ConfigPath == "" {
		return
	}
	if err := config.Update(a.opts.ConfigPath, func(c *config.Config) { c.DarkMode = dark }); err != nil {
		if a.logger != nil {
			a.logger.Warn("theme preference not saved", "path", a.opts.ConfigPath, "error", err)
		}
		a.c.UI.SetStatus("Theme preference not saved: " + err.Error())
	}
}

func (a *Application) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.c.RenderPresenter.Close()
	Destroy(App)
}

// scheduleUpdate queues the next tick on Tk's event loop thread.
func (a *Application) scheduleUpdate() {
	a.afterID = TclAfter(a.tick, func() { a.c.Loop.Tick() })
}
