package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/pixel-overlay-go/config"
	"github.com/soocke/pixel-overlay-go/domain/align"
	"github.com/soocke/pixel-overlay-go/domain/compose"
	"github.com/soocke/pixel-overlay-go/domain/source"
	"github.com/soocke/pixel-overlay-go/ui/model"
	"github.com/soocke/pixel-overlay-go/ui/presenter"
	"github.com/soocke/pixel-overlay-go/ui/view"
)

// Compile-time checks that the concrete types satisfy presenter contracts.
var (
	_ presenter.AlignModel     = (*align.Aligner)(nil)
	_ presenter.Rebaseliner    = (*align.Aligner)(nil)
	_ presenter.ResourceLoader = (*source.Loader)(nil)
	_ presenter.SlotStore      = (*model.SlotsModel)(nil)
	_ presenter.SlotSource     = (*model.SlotsModel)(nil)
	_ presenter.FrameRenderer  = (*compose.Compositor)(nil)
	_ presenter.SlotRenderer   = (*compose.Compositor)(nil)
	_ presenter.UploadView     = (*view.RootView)(nil)
	_ presenter.CompareView    = (*view.RootView)(nil)
	_ presenter.DragView       = (*view.RootView)(nil)
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Aligner    *align.Aligner
	Slots      *model.SlotsModel
	Loader     *source.Loader
	Compositor *compose.Compositor
	Grabber    source.ScreenGrabber
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	AlignPresenter  *presenter.AlignPresenter
	DragPresenter   *presenter.DragPresenter
	UploadPresenter *presenter.UploadPresenter
	RenderPresenter *presenter.RenderPresenter
	Loop            *presenter.Loop
}

// BuildContainer constructs all components without touching Tk; widgets are
// created later by RootView.Build.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	comp, err := compose.New(compose.Options{
		Width:             cfg.ViewportWidth,
		Height:            cfg.ViewportHeight,
		Background:        cfg.Background,
		PlaceholderBorder: cfg.PlaceholderBorder,
		Interpolation:     cfg.Interpolation,
		CacheSize:         cfg.LayerCacheSize,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("app: compositor: %w", err)
	}
	c.Compositor = comp
	c.Aligner = align.NewAligner(logger, cfg.DefaultOpacity, cfg.NudgeStep)
	c.Slots = model.NewSlotsModel()
	c.Loader = source.NewLoader(logger)
	c.Grabber = source.NewScreenGrabber(nil)

	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	c.RenderPresenter = presenter.NewRenderPresenter(comp, c.Slots, c.Aligner, c.RootView, logger)
	c.AlignPresenter = presenter.NewAlignPresenter(c.Aligner, c.Slots, comp.Viewport(), cfg.LargeNudgeStep, c.RenderPresenter, logger)
	c.DragPresenter = presenter.NewDragPresenter(c.Aligner, c.RootView)
	c.Aligner.AddDragListener(c.DragPresenter.OnTransition)
	c.UploadPresenter = presenter.NewUploadPresenter(c.Loader, c.Slots, c.Aligner, comp, c.RootView, c.RenderPresenter, c.Grabber, view.PreviewW, view.PreviewH, logger)
	return c, nil
}

// Viewport returns the comparison viewport rectangle.
func (c *AppContainer) Viewport() image.Rectangle {
	if c == nil || c.Compositor == nil {
		return image.Rectangle{}
	}
	return c.Compositor.Viewport()
}
