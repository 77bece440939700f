package entities

import (
	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// NewButtonEntity 创建一个文字按钮实体
// 参数:
//   - manager: EntityManager 实例
//   - text: 按钮文字
//   - x, y: 按钮中心位置
//   - onClick: 点击回调,可为 nil
//
// 返回: 创建的实体ID
func NewButtonEntity(manager *ecs.EntityManager, text string, x, y float64, onClick func()) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(e, &components.ButtonComponent{
		Text:    text,
		Width:   180,
		Height:  48,
		OnClick: onClick,
	})

	return e
}
