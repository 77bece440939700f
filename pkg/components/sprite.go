package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
//
// Image 非 nil 时绘制图片，否则 RenderSystem 用 Color 绘制
// Width x Height 的矢量矩形（无素材降级模式）
type SpriteComponent struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
	Color  color.RGBA

	// Label 显示在实体上的文字（调试字体），空字符串不显示
	Label string
}
