package entities

import (
	"testing"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// TestIngredientFactory 验证食材实体的组件齐全且原位记录正确
func TestIngredientFactory(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewIngredientEntity(em, "tomato", "番茄", 120, 500)

	ing, ok := ecs.GetComponent[*components.IngredientComponent](em, e)
	if !ok || ing.ID != "tomato" {
		t.Fatal("食材组件缺失或ID不符")
	}

	drag, ok := ecs.GetComponent[*components.DraggableComponent](em, e)
	if !ok {
		t.Fatal("可拖拽组件缺失")
	}
	if drag.HomeX != 120 || drag.HomeY != 500 {
		t.Errorf("回弹原位不符: (%v, %v)", drag.HomeX, drag.HomeY)
	}

	if !ecs.HasComponent[*components.SpriteComponent](em, e) {
		t.Error("精灵组件缺失")
	}
	if !ecs.HasComponent[*components.HoverHighlightComponent](em, e) {
		t.Error("悬停高亮组件缺失")
	}
}

// TestPotFactory 验证锅实体携带配方的完整投料顺序
func TestPotFactory(t *testing.T) {
	em := ecs.NewEntityManager()
	recipe := config.DefaultRecipeConfig()
	e := NewPotEntity(em, recipe, 400, 300)

	stage, ok := ecs.GetComponent[*components.StageComponent](em, e)
	if !ok {
		t.Fatal("阶段组件缺失")
	}
	if len(stage.Required) != len(recipe.Stages) {
		t.Fatalf("投料顺序长度不符: got %d, want %d", len(stage.Required), len(recipe.Stages))
	}
	for i, s := range recipe.Stages {
		if stage.Required[i] != s.IngredientID {
			t.Errorf("第 %d 阶段食材ID不符: got %q, want %q", i, stage.Required[i], s.IngredientID)
		}
	}
	if stage.Index != 0 || stage.Completed {
		t.Error("新建的锅应处于初始阶段")
	}
}

// TestOvenFactory 验证烤箱实体取配方的烘烤参数
func TestOvenFactory(t *testing.T) {
	em := ecs.NewEntityManager()
	recipe := config.DefaultRecipeConfig()
	e := NewOvenEntity(em, recipe, 600, 300)

	oven, ok := ecs.GetComponent[*components.OvenComponent](em, e)
	if !ok {
		t.Fatal("烤箱组件缺失")
	}
	if oven.BakeDuration != recipe.BakeDuration || oven.DishName != recipe.DishName {
		t.Error("烘烤参数应来自配方配置")
	}
	if oven.IsBaking {
		t.Error("新建的烤箱不应处于烘烤中")
	}
}

// TestCollectibleFactory 验证可收集实体可点击且带悬停高亮
func TestCollectibleFactory(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewCollectibleEntity(em, "新鲜番茄", 200, 200)

	click, ok := ecs.GetComponent[*components.ClickableComponent](em, e)
	if !ok || !click.IsEnabled {
		t.Fatal("可点击组件缺失或未启用")
	}
	if !ecs.HasComponent[*components.HoverHighlightComponent](em, e) {
		t.Error("悬停高亮组件缺失")
	}

	c, _ := ecs.GetComponent[*components.CollectibleComponent](em, e)
	if c.DisplayName != "新鲜番茄" {
		t.Errorf("显示名不符: %q", c.DisplayName)
	}
}

// TestRevealFactory 验证转盘实体取配置的候选集与节奏参数
func TestRevealFactory(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultRevealConfig()
	e := NewRevealEntity(em, cfg, 650, 150)

	r, ok := ecs.GetComponent[*components.RevealComponent](em, e)
	if !ok {
		t.Fatal("转盘组件缺失")
	}
	if len(r.Choices) != len(cfg.Choices) {
		t.Errorf("候选集长度不符: got %d, want %d", len(r.Choices), len(cfg.Choices))
	}
	if r.State != components.RevealStateIdle {
		t.Error("新建的转盘应处于 Idle")
	}
	if r.SpinDuration != cfg.SpinDuration || r.Cooldown != cfg.Cooldown {
		t.Error("节奏参数应来自配置")
	}
}

// TestChargerFactory 验证弹射器实体取配置的冲量范围
func TestChargerFactory(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultChargeConfig()
	e := NewChargerEntity(em, cfg, 100, 450)

	c, ok := ecs.GetComponent[*components.ChargeComponent](em, e)
	if !ok {
		t.Fatal("蓄力组件缺失")
	}
	if c.MinImpulse != cfg.MinImpulse || c.MaxImpulse != cfg.MaxImpulse {
		t.Error("冲量范围应来自配置")
	}
	if c.Curve != cfg.Curve {
		t.Errorf("蓄力曲线应来自配置, got %q", c.Curve)
	}
	if c.IsHolding {
		t.Error("新建的弹射器不应处于蓄力中")
	}
}

// TestLaunchableFactory 验证可弹射实体初始静止且未被弹射
func TestLaunchableFactory(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewLaunchableEntity(em, "萝卜", 300, 450)

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, e)
	if !ok {
		t.Fatal("速度组件缺失")
	}
	if vel.VX != 0 || vel.VY != 0 {
		t.Error("新建的可弹射实体应静止")
	}

	l, _ := ecs.GetComponent[*components.LaunchableComponent](em, e)
	if l.Launched {
		t.Error("新建的可弹射实体不应标记为已弹射")
	}
}
