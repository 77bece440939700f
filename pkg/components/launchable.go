package components

// LaunchableComponent 标记实体可以被弹射器弹射
// 组件类型本身就是角色注册表：系统按组件类型查询目标，
// 不做字符串标签匹配
type LaunchableComponent struct {
	// Launched 是否已被弹射过（配合 OncePerTarget 使用）
	Launched bool
}
