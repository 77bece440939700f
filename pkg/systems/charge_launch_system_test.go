package systems

import (
	"math"
	"testing"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
)

func newChargeFixture(t *testing.T) (*ecs.EntityManager, *ChargeLaunchSystem, ecs.EntityID) {
	t.Helper()

	em := ecs.NewEntityManager()
	system := NewChargeLaunchSystem(em, nil)

	cfg := config.DefaultChargeConfig()
	charger := em.CreateEntity()
	em.AddComponent(charger, &components.ChargeComponent{
		MinImpulse:     cfg.MinImpulse,
		MaxImpulse:     cfg.MaxImpulse,
		ChargeDuration: cfg.ChargeDuration,
		AngleDegrees:   cfg.AngleDegrees,
		OncePerTarget:  cfg.OncePerTarget,
		DespawnDelay:   cfg.DespawnDelay,
	})

	return em, system, charger
}

func spawnLaunchable(em *ecs.EntityManager) ecs.EntityID {
	e := em.CreateEntity()
	em.AddComponent(e, &components.PositionComponent{X: 300, Y: 400})
	em.AddComponent(e, &components.VelocityComponent{})
	em.AddComponent(e, &components.LaunchableComponent{})
	return e
}

func getCharge(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.ChargeComponent {
	t.Helper()
	c, ok := ecs.GetComponent[*components.ChargeComponent](em, id)
	if !ok {
		t.Fatal("蓄力组件不存在")
	}
	return c
}

// TestChargeGrowsLinearly 验证蓄力值随时间线性增长并封顶
func TestChargeGrowsLinearly(t *testing.T) {
	em, system, charger := newChargeFixture(t)
	c := getCharge(t, em, charger)

	system.BeginHold(charger)
	if c.Value != c.MinImpulse {
		t.Fatalf("蓄力起点应为最小冲量, got %v", c.Value)
	}

	// 蓄力一半时长 → 冲量在区间中点
	system.Advance(charger, c.ChargeDuration/2)
	mid := (c.MinImpulse + c.MaxImpulse) / 2
	if math.Abs(c.Value-mid) > 1e-9 {
		t.Errorf("半程蓄力值应为中点 %v, got %v", mid, c.Value)
	}

	// 超过蓄力时长 → 封顶在最大冲量
	system.Advance(charger, c.ChargeDuration*2)
	if c.Value != c.MaxImpulse {
		t.Errorf("蓄力应封顶在最大冲量 %v, got %v", c.MaxImpulse, c.Value)
	}
}

// TestChargeCurveShapesValue 验证蓄力值沿配置曲线增长且蓄满仍封顶
func TestChargeCurveShapesValue(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewChargeLaunchSystem(em, nil)

	charger := em.CreateEntity()
	em.AddComponent(charger, &components.ChargeComponent{
		MinImpulse:     100,
		MaxImpulse:     500,
		ChargeDuration: 1.0,
		Curve:          "out-quad",
	})
	c := getCharge(t, em, charger)

	system.BeginHold(charger)

	// 半程：out-quad 在 0.5 处为 0.75 → 100 + 400*0.75
	system.Advance(charger, 0.5)
	want := 100 + 400*0.75
	if math.Abs(c.Value-want) > 1e-9 {
		t.Errorf("半程蓄力值应为 %v, got %v", want, c.Value)
	}

	// 蓄满：所有曲线 f(1)=1，仍封顶在最大冲量
	system.Advance(charger, 1.0)
	if c.Value != c.MaxImpulse {
		t.Errorf("蓄满应封顶在最大冲量 %v, got %v", c.MaxImpulse, c.Value)
	}
}

// TestLaunchAppliesImpulseAlongAngle 验证弹射沿配置角度施加冲量
func TestLaunchAppliesImpulseAlongAngle(t *testing.T) {
	em, system, charger := newChargeFixture(t)
	c := getCharge(t, em, charger)
	target := spawnLaunchable(em)

	system.BeginHold(charger)
	system.Advance(charger, c.ChargeDuration) // 蓄满

	if n := system.EndHold(charger); n != 1 {
		t.Fatalf("应弹射一个目标, got %d", n)
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, target)
	radians := 60 * math.Pi / 180
	wantVX := 520 * math.Cos(radians)
	wantVY := -520 * math.Sin(radians)
	if math.Abs(vel.VX-wantVX) > 1e-6 || math.Abs(vel.VY-wantVY) > 1e-6 {
		t.Errorf("速度不符: got (%v, %v), want (%v, %v)", vel.VX, vel.VY, wantVX, wantVY)
	}
	if vel.Gravity != launchGravity {
		t.Errorf("弹射后应开始受重力, got %v", vel.Gravity)
	}

	// 弹射后蓄力状态归零
	if c.IsHolding || c.Elapsed != 0 || c.Value != 0 {
		t.Error("弹射后蓄力状态应归零")
	}
}

// TestOncePerTarget 验证每个目标最多弹射一次
func TestOncePerTarget(t *testing.T) {
	em, system, charger := newChargeFixture(t)
	spawnLaunchable(em)

	system.BeginHold(charger)
	system.Advance(charger, 0.5)
	if n := system.EndHold(charger); n != 1 {
		t.Fatalf("第一次应弹射一个目标, got %d", n)
	}

	system.BeginHold(charger)
	system.Advance(charger, 0.5)
	if n := system.EndHold(charger); n != 0 {
		t.Errorf("已弹射过的目标应被跳过, got %d", n)
	}
}

// TestLaunchSchedulesDespawn 验证被弹射目标按延迟自动销毁
func TestLaunchSchedulesDespawn(t *testing.T) {
	em, system, charger := newChargeFixture(t)
	target := spawnLaunchable(em)
	lifetime := NewLifetimeSystem(em)

	system.BeginHold(charger)
	system.EndHold(charger)

	lt, ok := ecs.GetComponent[*components.LifetimeComponent](em, target)
	if !ok {
		t.Fatal("被弹射目标应获得寿命组件")
	}
	if lt.MaxLifetime != 2.5 {
		t.Errorf("销毁延迟应为 2.5, got %v", lt.MaxLifetime)
	}

	lifetime.Update(2.6)
	em.RemoveMarkedEntities()
	if em.EntityExists(target) {
		t.Error("延迟到期后目标应被销毁")
	}
}

// TestEndHoldWithoutHold 验证未蓄力时的释放是空操作
func TestEndHoldWithoutHold(t *testing.T) {
	em, system, charger := newChargeFixture(t)
	spawnLaunchable(em)

	if n := system.EndHold(charger); n != 0 {
		t.Errorf("未蓄力的释放不应弹射, got %d", n)
	}
}
