package ecs

import "reflect"

// 泛型查询 API
//
// 反射版本的 GetComponent 需要调用方自行断言类型，泛型版本在编译期
// 保证类型正确，且避免了每次查询构造 reflect.Type 的开销。
// 系统代码应优先使用泛型版本。

// typeOf 返回组件类型 T 的 reflect.Type
func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// AddComponent 为实体添加组件（泛型版本）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体的特定类型组件（泛型版本）
//
// 返回:
//   - T: 组件实例
//   - bool: 组件是否存在
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有特定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 从实体移除指定类型的组件（泛型版本）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
