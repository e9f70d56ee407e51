package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/tada-app/tada/internal/appstate"
	"github.com/tada-app/tada/internal/bridge"
	"github.com/tada-app/tada/internal/desktop"
	"github.com/tada-app/tada/internal/repository/sqlite"
	"github.com/tada-app/tada/internal/service"
	"github.com/tada-app/tada/internal/version"
)

//go:embed all:web/dist
var assets embed.FS

// getDefaultDataDir returns the default data directory path (~/.config/tada)
func getDefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir is unavailable
		return "."
	}
	return filepath.Join(homeDir, ".config", "tada")
}

// openDatabase 打开本地数据库并执行待应用的迁移，迁移前先做文件快照
// 任一步失败都直接终止启动
func openDatabase(dbPath string) *sqlite.DB {
	_, statErr := os.Stat(dbPath)
	freshInstall := os.IsNotExist(statErr)

	db, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	current, err := db.CurrentVersion()
	if err != nil {
		log.Fatalf("Failed to read schema version: %v", err)
	}

	if len(sqlite.Pending(current, sqlite.Migrations)) > 0 {
		if !freshInstall {
			if _, err := service.NewBackupService(dbPath).BackupBeforeMigration(current); err != nil {
				log.Fatalf("Failed to back up database before migration: %v", err)
			}
		}
		if err := db.ApplyMigrations(sqlite.Migrations); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
	}

	return db
}

func main() {
	dataDir := flag.String("data", "", "Data directory for the database (default: ~/.config/tada)")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("tada", version.Full())
		os.Exit(0)
	}

	// Determine data directory: CLI flag > env var > default
	var dataDirPath string
	if *dataDir != "" {
		dataDirPath = *dataDir
	} else if envDataDir := os.Getenv("TADA_DATA_DIR"); envDataDir != "" {
		dataDirPath = envDataDir
	} else {
		dataDirPath = getDefaultDataDir()
	}
	if err := os.MkdirAll(dataDirPath, 0755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", dataDirPath, err)
	}

	// 迁移在 UI 可交互之前同步完成，之后前端才会打开自己的连接
	db := openDatabase(filepath.Join(dataDirPath, "tada.db"))
	defer db.Close()

	state := appstate.New()
	app := desktop.NewApp(state)
	caps := desktop.CurrentCapabilities()
	sqlBridge := bridge.NewSQLBridge(db)

	// 托盘在独立 goroutine 运行（systray.Run 会阻塞）
	tray := desktop.NewTrayManager(app, caps)
	go tray.Start()

	if caps.DockReopenShows {
		// 无可见窗口时点击 Dock 图标：Wails 内建的 reopen 处理
		// (applicationShouldHandleReopen) 直接显示主窗口，效果等同
		// RequestShow，无需在这里另行注册
		log.Println("[App] Dock reopen gesture will show the window")
	}

	// Create application menu (only for macOS); Cmd+Q goes through the same
	// quit path as the tray Quit item so the close interceptor lets it pass.
	var appMenu *menu.Menu
	if goruntime.GOOS == "darwin" {
		appMenu = menu.NewMenu()
		appMenu.Append(menu.AppMenu())

		fileMenu := appMenu.AddSubmenu("File")
		fileMenu.AddText("Quit", keys.CmdOrCtrl("q"), func(_ *menu.CallbackData) {
			app.RequestQuit()
		})

		// Edit Menu (for copy/paste support)
		appMenu.Append(menu.EditMenu())
	}

	err := wails.Run(&options.App{
		Title:     "Tada",
		Width:     1024,
		Height:    768,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 107, B: 102, A: 1},
		OnStartup:        app.Startup,
		OnBeforeClose:    app.BeforeClose,
		Bind: []interface{}{
			sqlBridge,
		},
		Menu: appMenu,
		Debug: options.Debug{
			OpenInspectorOnStartup: false,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: false,
				HideTitle:                  false,
				HideTitleBar:               false,
				FullSizeContent:            false,
				UseToolbar:                 false,
				HideToolbarSeparator:       true,
			},
			About: &mac.AboutInfo{
				Title:   "Tada",
				Message: "待办清单\n© 2025 tada-app",
			},
		},
	})

	if err != nil {
		log.Fatal("Error:", err)
	}
}
