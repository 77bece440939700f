package entities

import (
	"image/color"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// NewCollectibleEntity 创建一个可点击收集的物品实体
// 参数:
//   - manager: EntityManager 实例
//   - displayName: 显示名称(归类时对它做子串匹配)
//   - x, y: 物品位置
//
// 返回: 创建的实体ID
func NewCollectibleEntity(manager *ecs.EntityManager, displayName string, x, y float64) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(e, &components.SpriteComponent{
		Width:  44,
		Height: 44,
		Color:  color.RGBA{R: 120, G: 190, B: 120, A: 255},
		Label:  displayName,
	})

	manager.AddComponent(e, &components.ClickableComponent{
		Width:     44,
		Height:    44,
		IsEnabled: true,
	})

	manager.AddComponent(e, &components.HoverHighlightComponent{Intensity: 1.0})

	manager.AddComponent(e, &components.CollectibleComponent{
		DisplayName: displayName,
	})

	return e
}

// NewLaunchableEntity 创建一个可被弹射的实体
// 被弹射前静止,弹射后由 PhysicsSystem 按速度与重力驱动
func NewLaunchableEntity(manager *ecs.EntityManager, displayName string, x, y float64) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(e, &components.SpriteComponent{
		Width:  36,
		Height: 36,
		Color:  color.RGBA{R: 200, G: 120, B: 60, A: 255},
		Label:  displayName,
	})

	// 重力在弹射时才生效，弹射前目标停在原地
	manager.AddComponent(e, &components.VelocityComponent{})
	manager.AddComponent(e, &components.LaunchableComponent{})

	return e
}
