package systems

import (
	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// PhysicsSystem 简单物理系统
//
// 每帧把速度积分到位置上，受重力影响的实体速度随时间下落。
// 飞出屏幕下方足够远的实体直接销毁。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager

	// screenWidth, screenHeight 屏幕尺寸（越界裁剪用）
	screenWidth  float64
	screenHeight float64
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, screenWidth, screenHeight float64) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// Update 积分所有带速度组件的实体
func (s *PhysicsSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.VelocityComponent, *components.PositionComponent](s.entityManager)

	const cullMargin = 200.0

	for _, id := range entities {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		vel.VY += vel.Gravity * deltaTime
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		// 越界裁剪
		if pos.Y > s.screenHeight+cullMargin ||
			pos.X < -cullMargin || pos.X > s.screenWidth+cullMargin {
			s.entityManager.DestroyEntity(id)
		}
	}
}
