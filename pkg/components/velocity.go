package components

// VelocityComponent 存储实体的速度
// 由 PhysicsSystem 每帧积分到位置上
type VelocityComponent struct {
	VX float64 // 水平速度（像素/秒）
	VY float64 // 垂直速度（像素/秒，向下为正）

	// Gravity 重力加速度（像素/秒²），0 表示不受重力影响
	Gravity float64
}
