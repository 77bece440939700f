package config

// 游戏窗口与全局常量

const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 600

	// GameTitle 窗口标题
	GameTitle = "厨房派对 Kitchen Party"
)

// 场景ID（SceneFactory 的键）
const (
	// SceneMainMenu 主菜单场景
	SceneMainMenu = "menu"
	// SceneMarket 市场收集场景
	SceneMarket = "market"
	// SceneKitchen 厨房做菜场景
	SceneKitchen = "kitchen"
)
