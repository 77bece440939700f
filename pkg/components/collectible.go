package components

// CollectibleComponent 可收集物品组件
//
// DisplayName 用于类别归属：按配置顺序对类别名做
// 大小写不敏感的子串匹配，第一个命中的类别计数+1
type CollectibleComponent struct {
	DisplayName string

	// IsCollected 是否已被收集（防止重复计数）
	IsCollected bool
}
