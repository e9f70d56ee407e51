package desktop

import (
	"context"
	"log"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/tada-app/tada/internal/appstate"
)

// App 窗口控制器：每次关闭请求时决定是隐藏到托盘还是放行退出
//
// 状态机只有两个状态：Active（关闭请求被拦截并转为隐藏）和 Quitting
// （关闭请求放行，进程随即退出）。只有明确的退出动作（托盘 Quit、
// Cmd+Q）能进入 Quitting，且不可逆。
type App struct {
	state *appstate.State

	mu     sync.Mutex
	window WindowController
	quit   func()
}

func NewApp(state *appstate.State) *App {
	return &App{state: state}
}

// Startup Wails OnStartup 回调，窗口 context 就绪后才允许窗口操作
func (a *App) Startup(ctx context.Context) {
	a.startup(newRuntimeWindow(ctx), func() { runtime.Quit(ctx) })
	log.Println("[App] Startup complete")
}

func (a *App) startup(w WindowController, quit func()) {
	a.mu.Lock()
	a.window = w
	a.quit = quit
	a.mu.Unlock()

	// 托盘先于窗口就绪启动，Quit 可能在退出通道接好之前就被点了。
	// 那次调用只置了标志，这里替它补上退出。
	if a.state.Quitting() {
		quit()
	}
}

// RequestShow shows and focuses the primary window. Idempotent; silently
// dropped when the window is not available yet.
func (a *App) RequestShow() {
	a.mu.Lock()
	w := a.window
	a.mu.Unlock()

	if w == nil {
		return
	}
	w.Show()
}

// RequestQuit marks the application as quitting and terminates the process
// with exit code 0. Only the explicit quit paths call this; repeated calls
// are no-ops.
func (a *App) RequestQuit() {
	if !a.state.BeginQuit() {
		return
	}
	log.Println("[App] Quit requested, shutting down")

	a.mu.Lock()
	quit := a.quit
	a.mu.Unlock()

	// 退出通道还没接好时只留下标志，startup 接好后立即补发
	if quit != nil {
		quit()
	}
}

// BeforeClose Wails OnBeforeClose 回调。返回 true 阻止默认关闭。
// 非退出状态下拦截关闭并隐藏窗口，进程和托盘保持存活。
func (a *App) BeforeClose(ctx context.Context) bool {
	if a.state.Quitting() {
		return false
	}

	log.Println("[App] Window close requested - hiding to tray")
	a.mu.Lock()
	w := a.window
	a.mu.Unlock()

	if w != nil {
		w.Hide()
	}
	return true
}
