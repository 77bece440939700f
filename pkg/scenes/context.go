// Package scenes 实现游戏的各个场景
package scenes

import (
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/game"
)

// Context 场景共享的依赖集合
//
// 由组合根（app 包）创建并传给每个场景的构造函数，
// 场景不自己创建管理器，也不访问任何全局状态
type Context struct {
	SceneManager    *game.SceneManager
	ResourceManager *game.ResourceManager
	AudioManager    *game.AudioManager  // 可为 nil（无声模式）
	SettingsManager *game.SettingsManager
	ProgressStore   *game.ProgressStore

	RecipeConfig     *config.RecipeConfig
	CollectionConfig *config.CollectionConfig
	RevealConfig     *config.RevealConfig
	ChargeConfig     *config.ChargeConfig
}

// pointInRect 点是否落在中心对齐的矩形内
func pointInRect(x, y, cx, cy, w, h float64) bool {
	return x >= cx-w/2 && x <= cx+w/2 && y >= cy-h/2 && y <= cy+h/2
}
