package systems

import (
	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/utils"
)

// HoverSystem 悬停高亮系统
//
// 指针停在带高亮组件的实体上时点亮，离开时熄灭。
// 命中区域优先取可点击组件（禁用时不高亮），没有可点击组件的
// 实体（如可拖拽的食材）退回用精灵尺寸做命中判定。
type HoverSystem struct {
	entityManager *ecs.EntityManager
}

// NewHoverSystem 创建悬停高亮系统
func NewHoverSystem(em *ecs.EntityManager) *HoverSystem {
	return &HoverSystem{entityManager: em}
}

// Update 按当前指针位置刷新所有高亮组件
func (s *HoverSystem) Update(deltaTime float64) {
	x, y := utils.GetPointerPosition()
	s.UpdateAt(float64(x), float64(y))
}

// UpdateAt 以指定指针位置刷新高亮（测试入口）
func (s *HoverSystem) UpdateAt(x, y float64) {
	entities := ecs.GetEntitiesWith2[*components.HoverHighlightComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		hover, _ := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		w, h, enabled := s.hitArea(id)
		if w <= 0 || h <= 0 {
			hover.IsActive = false
			continue
		}
		hover.IsActive = enabled && pointInRect(x, y, pos.X, pos.Y, w, h)
	}
}

// hitArea 返回实体的悬停命中区域与是否参与高亮
func (s *HoverSystem) hitArea(id ecs.EntityID) (w, h float64, enabled bool) {
	if click, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		return click.Width, click.Height, click.IsEnabled
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		return sprite.Width, sprite.Height, true
	}
	return 0, 0, false
}
