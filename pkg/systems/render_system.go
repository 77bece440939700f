package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// RenderSystem 渲染系统
//
// 绘制所有带精灵组件的实体：有图片画图片，没有图片用纯色矩形
// 降级（无素材模式）。悬停高亮画一圈描边，标签用调试字体。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制所有精灵实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		left := float32(pos.X - sprite.Width/2)
		top := float32(pos.Y - sprite.Height/2)
		w := float32(sprite.Width)
		h := float32(sprite.Height)

		if sprite.Image != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(pos.X-sprite.Width/2, pos.Y-sprite.Height/2)
			screen.DrawImage(sprite.Image, op)
		} else {
			vector.DrawFilledRect(screen, left, top, w, h, sprite.Color, false)
		}

		if hover, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok && hover.IsActive {
			vector.StrokeRect(screen, left-2, top-2, w+4, h+4, 2,
				color.RGBA{R: 255, G: 240, B: 120, A: 255}, false)
		}

		if sprite.Label != "" {
			ebitenutil.DebugPrintAt(screen, sprite.Label, int(pos.X-sprite.Width/2), int(pos.Y-sprite.Height/2)-14)
		}
	}
}
