package components

// ChargeComponent 蓄力组件（挂在弹射器实体上）
//
// 指针按住期间 Elapsed 随真实时间增长，蓄力值经缓动曲线
// 从 MinImpulse 过渡到 MaxImpulse；松开时把当前蓄力值作为
// 冲量施加到所有可弹射实体上，然后归零
type ChargeComponent struct {
	// MinImpulse, MaxImpulse 冲量范围（像素/秒）
	MinImpulse float64
	MaxImpulse float64

	// ChargeDuration 从最小蓄满到最大所需时长（秒）
	ChargeDuration float64

	// Curve 蓄力值的增长曲线名，空串表示线性
	Curve string

	// AngleDegrees 弹射方向角度（0 = 向右，90 = 向上）
	AngleDegrees float64

	// OncePerTarget 每个目标是否最多只弹射一次
	OncePerTarget bool

	// DespawnDelay 弹射后目标延迟销毁时间（秒），0 表示不销毁
	DespawnDelay float64

	// ===== 运行时状态 =====
	IsHolding bool    // 是否正在蓄力
	Elapsed   float64 // 已蓄力时间（秒）
	Value     float64 // 当前蓄力值（用于显示蓄力条）
}
