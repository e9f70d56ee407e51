package desktop

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// WindowController 主窗口操作的抽象，控制器逻辑不直接依赖 Wails runtime
type WindowController interface {
	// Show makes the window visible and brings it to the front.
	Show()
	// Hide takes the window off screen without destroying it.
	Hide()
}

// runtimeWindow drives the Wails primary window.
type runtimeWindow struct {
	ctx context.Context
}

func newRuntimeWindow(ctx context.Context) *runtimeWindow {
	return &runtimeWindow{ctx: ctx}
}

func (w *runtimeWindow) Show() {
	runtime.WindowShow(w.ctx)
	runtime.WindowUnminimise(w.ctx)
}

func (w *runtimeWindow) Hide() {
	runtime.WindowHide(w.ctx)
}
