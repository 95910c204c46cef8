package presenter

import (
	"github.com/soocke/pixel-overlay-go/domain/align"
)

// DragSource provides the drag machine state the presenter reflects.
type DragSource interface {
	State() align.State
}

// DragView sets the drag state label in the view.
type DragView interface{ SetDragLabel(string) }

// DragPresenter receives drag transitions and reflects the latest one on Tick.
type DragPresenter struct {
	src     DragSource
	view    DragView
	latest  align.DragState
	shown   bool
	pending []align.DragState
}

func NewDragPresenter(src DragSource, view DragView) *DragPresenter {
	return &DragPresenter{src: src, view: view}
}

// OnTransition queues a transition from the drag machine listener.
func (p *DragPresenter) OnTransition(_, next align.DragState) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick updates the view with the most recent queued state and clears the queue.
func (p *DragPresenter) Tick() {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	if len(p.pending) == 0 && p.shown {
		return
	}
	last := p.src.State().Drag
	if len(p.pending) > 0 {
		last = p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
	}
	if p.shown && last == p.latest {
		return
	}
	p.latest = last
	p.shown = true
	p.view.SetDragLabel("Drag: " + last.String())
}
