package systems

import (
	"log"
	"math"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/game"
	"github.com/gonewx/kitchen/pkg/utils"
)

// SoundLaunch 弹射时播放的音效ID
const SoundLaunch = "SOUND_LAUNCH"

// launchGravity 被弹射目标的下落加速度（像素/秒²）
const launchGravity = 600.0

// ChargeLaunchSystem 蓄力弹射系统
//
// 指针按住蓄力、松开弹射：
//   - 蓄力值随按住时间沿配置的缓动曲线从 MinImpulse 增长到
//     MaxImpulse，ChargeDuration 秒后封顶
//   - 松开时把当前蓄力值作为冲量、沿配置角度施加到所有可弹射
//     实体的速度上；OncePerTarget 时已弹射过的目标被跳过
//   - DespawnDelay > 0 时被弹射目标在延迟后自动销毁
type ChargeLaunchSystem struct {
	entityManager *ecs.EntityManager
	audioManager  *game.AudioManager // 可为 nil
}

// NewChargeLaunchSystem 创建蓄力弹射系统
func NewChargeLaunchSystem(em *ecs.EntityManager, am *game.AudioManager) *ChargeLaunchSystem {
	return &ChargeLaunchSystem{
		entityManager: em,
		audioManager:  am,
	}
}

// Update 按指针按压状态驱动所有蓄力实体
func (s *ChargeLaunchSystem) Update(deltaTime float64) {
	pressed := utils.IsPointerPressed()
	chargers := ecs.GetEntitiesWith1[*components.ChargeComponent](s.entityManager)

	for _, id := range chargers {
		charge, _ := ecs.GetComponent[*components.ChargeComponent](s.entityManager, id)

		switch {
		case pressed && !charge.IsHolding:
			s.BeginHold(id)
		case pressed && charge.IsHolding:
			s.advance(charge, deltaTime)
		case !pressed && charge.IsHolding:
			s.EndHold(id)
		}
	}
}

// BeginHold 开始蓄力
func (s *ChargeLaunchSystem) BeginHold(id ecs.EntityID) {
	charge, ok := ecs.GetComponent[*components.ChargeComponent](s.entityManager, id)
	if !ok {
		return
	}
	charge.IsHolding = true
	charge.Elapsed = 0
	charge.Value = charge.MinImpulse
}

// Advance 推进蓄力时间（测试入口；Update 内部按帧调用）
func (s *ChargeLaunchSystem) Advance(id ecs.EntityID, deltaTime float64) {
	charge, ok := ecs.GetComponent[*components.ChargeComponent](s.entityManager, id)
	if !ok || !charge.IsHolding {
		return
	}
	s.advance(charge, deltaTime)
}

func (s *ChargeLaunchSystem) advance(charge *components.ChargeComponent, deltaTime float64) {
	charge.Elapsed += deltaTime

	// 蓄力值沿配置曲线增长，ChargeDuration 后封顶
	// 所有曲线满足 f(1) = 1，蓄满始终等于 MaxImpulse
	ease := utils.EasingByName(charge.Curve)
	t := utils.Clamp01(charge.Elapsed / charge.ChargeDuration)
	charge.Value = utils.Lerp(charge.MinImpulse, charge.MaxImpulse, ease(t))
}

// EndHold 结束蓄力并弹射
//
// 返回：
//   - int: 本次被弹射的目标数量
func (s *ChargeLaunchSystem) EndHold(id ecs.EntityID) int {
	charge, ok := ecs.GetComponent[*components.ChargeComponent](s.entityManager, id)
	if !ok || !charge.IsHolding {
		return 0
	}

	impulse := charge.Value
	charge.IsHolding = false
	charge.Elapsed = 0
	charge.Value = 0

	launched := s.launch(charge, impulse)
	if launched > 0 && s.audioManager != nil {
		s.audioManager.PlaySound(SoundLaunch)
	}
	log.Printf("[Charge] Released at impulse %.0f, launched %d target(s)", impulse, launched)
	return launched
}

// launch 把冲量施加到所有可弹射目标上
func (s *ChargeLaunchSystem) launch(charge *components.ChargeComponent, impulse float64) int {
	// 屏幕坐标 y 轴向下，向上弹射取负
	radians := charge.AngleDegrees * math.Pi / 180
	vx := impulse * math.Cos(radians)
	vy := -impulse * math.Sin(radians)

	targets := ecs.GetEntitiesWith2[*components.LaunchableComponent, *components.VelocityComponent](s.entityManager)

	launched := 0
	for _, id := range targets {
		target, _ := ecs.GetComponent[*components.LaunchableComponent](s.entityManager, id)
		if charge.OncePerTarget && target.Launched {
			continue
		}
		target.Launched = true

		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		vel.VX = vx
		vel.VY = vy
		if vel.Gravity == 0 {
			vel.Gravity = launchGravity
		}

		if charge.DespawnDelay > 0 {
			// 覆盖旧组件，销毁计时从本次弹射重新开始
			s.entityManager.AddComponent(id, &components.LifetimeComponent{
				MaxLifetime: charge.DespawnDelay,
			})
		}
		launched++
	}
	return launched
}
