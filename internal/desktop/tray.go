package desktop

import (
	_ "embed"
	"log"

	"github.com/getlantern/systray"
)

//go:embed icon.ico
var iconData []byte

// TrayManager 管理系统托盘
type TrayManager struct {
	app      *App
	caps     Capabilities
	menuShow *systray.MenuItem
	menuQuit *systray.MenuItem
}

// NewTrayManager 创建托盘管理器
func NewTrayManager(app *App, caps Capabilities) *TrayManager {
	return &TrayManager{app: app, caps: caps}
}

// Start 启动托盘，阻塞直到托盘退出
func (t *TrayManager) Start() {
	systray.Run(t.onReady, t.onExit)
}

// onReady 托盘就绪回调
func (t *TrayManager) onReady() {
	log.Println("[Tray] Initializing system tray...")

	systray.SetIcon(iconData)
	systray.SetTitle("Tada")

	tooltip := "Tada - 待办清单"
	if t.caps.TrayPrimaryClickShows {
		tooltip += " (单击显示窗口)"
	}
	systray.SetTooltip(tooltip)

	t.menuShow = systray.AddMenuItem("Show Tada", "显示主窗口")
	t.menuQuit = systray.AddMenuItem("Quit", "退出应用")

	go t.handleMenuEvents()
}

// onExit 托盘退出回调
func (t *TrayManager) onExit() {
	log.Println("[Tray] System tray exited")
}

// handleMenuEvents 处理菜单事件
func (t *TrayManager) handleMenuEvents() {
	for {
		select {
		case <-t.menuShow.ClickedCh:
			log.Println("[Tray] Show clicked")
			t.app.RequestShow()

		case <-t.menuQuit.ClickedCh:
			log.Println("[Tray] Quit clicked")
			t.app.RequestQuit()
			systray.Quit()
			return
		}
	}
}
