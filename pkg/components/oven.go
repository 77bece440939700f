package components

// OvenComponent 烤箱组件
//
// 配方完成后由 DragSystem 点火（IsBaking=true），
// BakeSystem 倒计时 BakeDuration 秒后生成成品菜并播放音效。
// 重新点火会重置 Elapsed（取消并重启烘烤计时）
type OvenComponent struct {
	// BakeDuration 烘烤时长（秒）
	BakeDuration float64

	// IsBaking 是否正在烘烤
	IsBaking bool

	// Elapsed 已烘烤时间（秒）
	Elapsed float64

	// DishName 烘烤完成后生成的菜品名称
	DishName string

	// DishesBaked 累计出炉的菜品数量
	DishesBaked int
}
