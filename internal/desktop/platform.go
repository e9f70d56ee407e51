package desktop

import goruntime "runtime"

// Capabilities 描述宿主平台上除托盘菜单之外还有哪些手势会触发显示主窗口
type Capabilities struct {
	// TrayPrimaryClickShows 左键单击托盘图标显示窗口（菜单走右键）
	TrayPrimaryClickShows bool
	// DockReopenShows 没有可见窗口时点击 Dock 图标重新显示
	DockReopenShows bool
}

// 每个平台的手势都映射到同一个 RequestShow 动作
var platformCapabilities = map[string]Capabilities{
	"windows": {TrayPrimaryClickShows: true},
	"linux":   {TrayPrimaryClickShows: true},
	"darwin":  {DockReopenShows: true},
}

// CapabilitiesFor returns the show-gesture capabilities for a GOOS value.
// Unknown platforms fall back to menu-only.
func CapabilitiesFor(goos string) Capabilities {
	return platformCapabilities[goos]
}

// CurrentCapabilities returns the capabilities of the running platform.
func CurrentCapabilities() Capabilities {
	return CapabilitiesFor(goruntime.GOOS)
}
