package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如飞出的食材、烤好的菜)
//
// 重新调度语义：对同一实体再次 AddComponent 会覆盖旧组件，
// 等价于取消旧的延迟删除并重新计时
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
