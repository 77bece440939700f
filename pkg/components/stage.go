package components

// StageComponent 配方阶段组件（挂在锅实体上）
//
// 记录一份有序配方的推进状态：
//   - Required 是按顺序要求投入的食材ID列表
//   - Index 是当前阶段（0..len(Required)），只在精确匹配时前进
//   - 错误投放不消耗食材、不改变状态，只累加 Rejections
//
// 状态只能通过重建组件重置（重新开始做菜）
type StageComponent struct {
	// RecipeName 配方名称（用于显示和日志）
	RecipeName string

	// Required 按顺序要求的食材ID列表
	Required []string

	// Index 当前阶段索引，等于已正确投入的食材数量
	Index int

	// Completed 配方是否已完成（Index == len(Required)）
	// 完成后不再接受任何投放
	Completed bool

	// Rejections 被拒绝的投放次数（统计/测试用）
	Rejections int
}
