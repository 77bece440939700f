package components

// DraggableComponent 标记实体可以被指针拖拽
//
// HomeX/HomeY 记录拖拽起点，投放被拒绝时实体回弹到该位置
type DraggableComponent struct {
	// IsDragging 当前是否正在被拖拽
	IsDragging bool

	// OffsetX, OffsetY 按下点相对实体中心的偏移
	// 拖拽时保持该偏移，避免实体瞬移到指针下
	OffsetX float64
	OffsetY float64

	// HomeX, HomeY 实体的原位（回弹目标）
	HomeX float64
	HomeY float64
}
