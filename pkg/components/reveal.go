package components

// RevealState 幸运转盘的状态
type RevealState int

const (
	// RevealStateIdle 空闲，可以接受新请求
	RevealStateIdle RevealState = iota
	// RevealStateGenerating 正在闪烁抽取中
	RevealStateGenerating
	// RevealStateCooldown 冷却中，请求被忽略
	// 冷却剩余时间由 Update 递减，状态转换在下一次请求时惰性检查
	RevealStateCooldown
)

// RevealComponent 幸运转盘组件
//
// 状态机：Idle → Generating → Cooldown → Idle
//   - Generating 期间以递减频率随机闪烁候选项，闪烁间隔从
//     StartInterval 经幂曲线过渡到 EndInterval
//   - SpinDuration 结束时提交一次均匀随机的最终结果
//   - Generating/Cooldown 期间的请求是空操作，已提交结果不变
type RevealComponent struct {
	// Choices 候选项列表（非空）
	Choices []string

	// State 当前状态
	State RevealState

	// ===== 闪烁参数（来自 RevealConfig）=====
	StartInterval   float64 // 起始闪烁间隔（秒，较快）
	EndInterval     float64 // 结束闪烁间隔（秒，较慢）
	SpinDuration    float64 // 整个抽取过程时长（秒）
	CurveExponent   float64 // 幂曲线指数，控制减速节奏
	VisibleDuration float64 // 结果展示时长（秒），到期自动隐藏
	Cooldown        float64 // 冷却时长（秒），与 SpinDuration 无关

	// ===== 运行时状态 =====
	SpinElapsed  float64 // 本次抽取已进行时间
	FlashTimer   float64 // 距下次闪烁切换的剩余时间
	CurrentFlash int     // 当前闪烁显示的候选项索引

	// Outcome 最终结果索引，HasOutcome 为 true 时有效
	Outcome    int
	HasOutcome bool

	// ShowResult 结果是否正在展示
	// 到期自动隐藏，下一次请求会取消未到期的隐藏计时
	ShowResult       bool
	VisibleRemaining float64 // 展示剩余时间

	// CooldownRemaining 冷却剩余时间
	CooldownRemaining float64

	// CommitCount 累计提交次数（每次抽取恰好提交一次）
	CommitCount int
}
