package appstate

import "sync/atomic"

// State 应用运行时状态，注入到所有窗口/托盘事件回调中共享
type State struct {
	// quitting 为 true 表示用户已明确退出（托盘 Quit 或 Cmd+Q）
	// 窗口关闭拦截器据此决定是隐藏窗口还是放行关闭
	quitting atomic.Bool
}

// New 创建初始状态（quitting=false）
func New() *State {
	return &State{}
}

// BeginQuit marks the application as quitting and reports whether this call
// was the one that initiated it. The flag never returns to false.
func (s *State) BeginQuit() bool {
	return s.quitting.CompareAndSwap(false, true)
}

// Quitting reports whether an explicit quit has been requested.
func (s *State) Quitting() bool {
	return s.quitting.Load()
}
