package components

// ButtonComponent 按钮组件
// 纯数据组件：外观尺寸、文字、状态、点击回调
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// IsHovered 指针是否悬停在按钮上（由 ButtonSystem 每帧更新）
	IsHovered bool

	// OnClick 点击回调函数
	OnClick func()
}
