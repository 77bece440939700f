// Package app 提供游戏应用的核心包装器
//
// 该包是组合根：所有管理器、配置和场景工厂都在这里创建并注入，
// 场景与系统不访问任何全局状态。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/game"
	"github.com/gonewx/kitchen/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 启动场景ID（如 "kitchen"），为空则进入主菜单
	Scene string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)

	// 资源配置缺失时继续运行（无声模式）
	if err := resourceManager.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		log.Printf("[App] Warning: resource config unavailable, running silent: %v", err)
	}

	// 本地存储不可用时降级为内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: "kitchen-party"})
	if err != nil {
		log.Printf("[App] Warning: local storage unavailable, progress will not persist: %v", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: failed to init settings, using defaults: %v", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	progressStore := game.NewProgressStore(gdataManager)

	sceneManager := game.NewSceneManager()

	ctx := &scenes.Context{
		SceneManager:     sceneManager,
		ResourceManager:  resourceManager,
		AudioManager:     audioManager,
		SettingsManager:  settingsManager,
		ProgressStore:    progressStore,
		RecipeConfig:     loadRecipeConfig(),
		CollectionConfig: loadCollectionConfig(),
		RevealConfig:     loadRevealConfig(),
		ChargeConfig:     loadChargeConfig(),
	}

	sceneManager.SetSceneFactory(func(sceneID string) game.Scene {
		switch sceneID {
		case config.SceneMainMenu:
			return scenes.NewMainMenuScene(ctx)
		case config.SceneMarket:
			return scenes.NewMarketScene(ctx)
		case config.SceneKitchen:
			return scenes.NewKitchenScene(ctx)
		}
		return nil
	})

	startScene := cfg.Scene
	if startScene == "" {
		startScene = config.SceneMainMenu
	}
	sceneManager.LoadScene(startScene)
	if sceneManager.GetCurrentScene() == nil {
		log.Printf("[App] Unknown start scene %q, falling back to main menu", startScene)
		sceneManager.LoadScene(config.SceneMainMenu)
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// 各配置文件缺失时降级使用内置默认值

func loadRecipeConfig() *config.RecipeConfig {
	cfg, err := config.LoadRecipeConfig("assets/config/recipe.yaml")
	if err != nil {
		log.Printf("[App] Using default recipe: %v", err)
		return config.DefaultRecipeConfig()
	}
	return cfg
}

func loadCollectionConfig() *config.CollectionConfig {
	cfg, err := config.LoadCollectionConfig("assets/config/collection.yaml")
	if err != nil {
		log.Printf("[App] Using default collection goals: %v", err)
		return config.DefaultCollectionConfig()
	}
	return cfg
}

func loadRevealConfig() *config.RevealConfig {
	cfg, err := config.LoadRevealConfig("assets/config/reveal.yaml")
	if err != nil {
		log.Printf("[App] Using default reveal settings: %v", err)
		return config.DefaultRevealConfig()
	}
	return cfg
}

func loadChargeConfig() *config.ChargeConfig {
	cfg, err := config.LoadChargeConfig("assets/config/charge.yaml")
	if err != nil {
		log.Printf("[App] Using default charge settings: %v", err)
		return config.DefaultChargeConfig()
	}
	return cfg
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
