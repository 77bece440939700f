package components

// PositionComponent 存储实体在逻辑屏幕坐标系中的位置
// 坐标为实体中心点
type PositionComponent struct {
	X float64
	Y float64
}
