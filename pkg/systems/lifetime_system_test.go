package systems

import (
	"testing"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime:     10.0,
		CurrentLifetime: 0,
	})

	system.Update(5.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: 10.0,
	})

	system.Update(12.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}

	em.RemoveMarkedEntities()

	if em.EntityExists(id) {
		t.Error("Expired entity should be removed")
	}
}

// TestLifetimeReschedule 验证重新挂载生命周期组件等价于取消并重启计时
// 同一实体只会有一次"到期删除"最终生效
func TestLifetimeReschedule(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 2.0})

	system.Update(1.5)

	// 第一次计时快到期时重新调度：覆盖组件，重新计时
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 2.0})

	system.Update(1.0)
	em.RemoveMarkedEntities()
	if !em.EntityExists(id) {
		t.Fatal("重新调度后旧计时不应生效")
	}

	system.Update(1.5)
	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("新计时到期后实体应被删除")
	}
}
