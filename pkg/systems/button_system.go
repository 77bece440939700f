package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/utils"
)

// ButtonSystem 按钮系统
//
// 悬停变色，点击触发按钮上的回调。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// Update 处理按钮的悬停与点击
func (s *ButtonSystem) Update(deltaTime float64) {
	mx, my := utils.GetPointerPosition()
	pressed, px, py := utils.IsPointerJustPressed()

	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, id := range buttons {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		btn.IsHovered = pointInRect(float64(mx), float64(my), pos.X, pos.Y, btn.Width, btn.Height)

		if pressed && pointInRect(float64(px), float64(py), pos.X, pos.Y, btn.Width, btn.Height) {
			s.Click(id)
		}
	}
}

// Click 触发按钮回调（测试入口）
func (s *ButtonSystem) Click(id ecs.EntityID) {
	btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok || btn.OnClick == nil {
		return
	}
	btn.OnClick()
}

// Draw 绘制所有按钮
func (s *ButtonSystem) Draw(screen *ebiten.Image) {
	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, id := range buttons {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		left := float32(pos.X - btn.Width/2)
		top := float32(pos.Y - btn.Height/2)

		fill := color.RGBA{R: 70, G: 110, B: 70, A: 255}
		if btn.IsHovered {
			fill = color.RGBA{R: 100, G: 150, B: 100, A: 255}
		}
		vector.DrawFilledRect(screen, left, top, float32(btn.Width), float32(btn.Height), fill, false)
		vector.StrokeRect(screen, left, top, float32(btn.Width), float32(btn.Height), 1,
			color.RGBA{R: 230, G: 230, B: 230, A: 255}, false)

		ebitenutil.DebugPrintAt(screen, btn.Text, int(pos.X-btn.Width/2)+8, int(pos.Y)-8)
	}
}
