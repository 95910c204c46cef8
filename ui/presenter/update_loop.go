package presenter

// Loop aggregates feature presenters and drives periodic updates.
//
// Each tick folds finished loads into the slots, reflects drag state, then
// renders if anything changed, and finally invokes the scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Upload   *UploadPresenter
	Drag     *DragPresenter
	Render   *RenderPresenter
	Schedule func()
}

func NewLoop(upload *UploadPresenter, drag *DragPresenter, render *RenderPresenter, schedule func()) *Loop {
	return &Loop{Upload: upload, Drag: drag, Render: render, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Upload != nil {
		l.Upload.Tick()
	}
	if l.Drag != nil {
		l.Drag.Tick()
	}
	if l.Render != nil {
		l.Render.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
