package systems

import (
	"testing"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
)

func newBakeFixture(t *testing.T) (*ecs.EntityManager, *BakeSystem, ecs.EntityID) {
	t.Helper()

	em := ecs.NewEntityManager()
	recipe := config.DefaultRecipeConfig()
	system := NewBakeSystem(em, nil, recipe)

	oven := em.CreateEntity()
	em.AddComponent(oven, &components.PositionComponent{X: 600, Y: 400})
	em.AddComponent(oven, &components.OvenComponent{
		BakeDuration: 2.0,
		DishName:     recipe.DishName,
	})

	return em, system, oven
}

func countDishes(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith2[*components.LifetimeComponent, *components.SpriteComponent](em))
}

// TestBakeCountdown 验证点火后倒计时结束才出炉
func TestBakeCountdown(t *testing.T) {
	em, system, oven := newBakeFixture(t)

	system.Arm(oven)
	system.Update(1.0)
	if countDishes(em) != 0 {
		t.Fatal("倒计时未结束不应出炉")
	}

	system.Update(1.5)
	if countDishes(em) != 1 {
		t.Fatalf("倒计时结束应出炉一份, got %d", countDishes(em))
	}

	o, _ := ecs.GetComponent[*components.OvenComponent](em, oven)
	if o.IsBaking {
		t.Error("出炉后烤箱应停止烘烤")
	}
	if o.DishesBaked != 1 {
		t.Errorf("累计出炉数应为 1, got %d", o.DishesBaked)
	}
}

// TestBakeNotArmed 验证未点火的烤箱不推进
func TestBakeNotArmed(t *testing.T) {
	em, system, _ := newBakeFixture(t)

	system.Update(100)
	if countDishes(em) != 0 {
		t.Error("未点火的烤箱不应出炉")
	}
}

// TestBakeRearmRestartsCountdown 验证重复点火重启倒计时
func TestBakeRearmRestartsCountdown(t *testing.T) {
	em, system, oven := newBakeFixture(t)

	system.Arm(oven)
	system.Update(1.5)
	system.Arm(oven) // 倒计时重启
	system.Update(1.5)

	if countDishes(em) != 0 {
		t.Fatal("重启后的倒计时未结束不应出炉")
	}

	system.Update(0.6)
	if countDishes(em) != 1 {
		t.Fatalf("重启后的倒计时结束应出炉, got %d", countDishes(em))
	}
}

// TestDishExpires 验证成品菜超过寿命后自动消失
func TestDishExpires(t *testing.T) {
	em, system, oven := newBakeFixture(t)
	lifetime := NewLifetimeSystem(em)

	system.Arm(oven)
	system.Update(2.1)
	if countDishes(em) != 1 {
		t.Fatal("应出炉一份")
	}

	recipe := config.DefaultRecipeConfig()
	lifetime.Update(recipe.DishLifetime + 0.1)
	em.RemoveMarkedEntities()

	if countDishes(em) != 0 {
		t.Error("超过寿命的成品菜应消失")
	}
}
