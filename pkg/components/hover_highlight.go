package components

// HoverHighlightComponent 悬停高亮组件
// 用于实体被鼠标悬停时的持续高亮效果（不闪烁）
//
// 使用场景：可拖拽食材、可收集物品、幸运转盘等可交互实体
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0）
	Intensity float64

	// IsActive 是否激活
	IsActive bool
}
