// Package entities 提供各类游戏实体的工厂函数
package entities

import (
	"image/color"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// ingredientPalette 无素材模式下各食材的降级颜色
var ingredientPalette = map[string]color.RGBA{
	"dough":  {R: 240, G: 225, B: 180, A: 255},
	"tomato": {R: 220, G: 60, B: 50, A: 255},
	"cheese": {R: 250, G: 210, B: 90, A: 255},
	"basil":  {R: 70, G: 160, B: 80, A: 255},
}

// NewIngredientEntity 创建一个可拖拽的食材实体
// 参数:
//   - manager: EntityManager 实例
//   - id: 食材ID(配方匹配用,区分大小写)
//   - displayName: 显示名称
//   - x, y: 初始位置(也是拖拽回弹的原位)
//
// 返回: 创建的实体ID
func NewIngredientEntity(manager *ecs.EntityManager, id, displayName string, x, y float64) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	c, ok := ingredientPalette[id]
	if !ok {
		c = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	}
	manager.AddComponent(e, &components.SpriteComponent{
		Width:  48,
		Height: 48,
		Color:  c,
		Label:  displayName,
	})

	manager.AddComponent(e, &components.DraggableComponent{
		HomeX: x,
		HomeY: y,
	})

	manager.AddComponent(e, &components.HoverHighlightComponent{Intensity: 1.0})

	manager.AddComponent(e, &components.IngredientComponent{
		ID:          id,
		DisplayName: displayName,
	})

	return e
}
