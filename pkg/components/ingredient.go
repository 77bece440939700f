package components

// IngredientComponent 食材组件
// ID 用于配方阶段匹配（区分大小写的精确匹配），
// DisplayName 用于界面显示
type IngredientComponent struct {
	ID          string
	DisplayName string
}
