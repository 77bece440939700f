package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/game"
)

// newRevealFixture 创建转盘系统与转盘实体，rng 使用固定种子
func newRevealFixture(t *testing.T) (*ecs.EntityManager, *RevealSystem, ecs.EntityID, *game.ProgressStore) {
	t.Helper()

	em := ecs.NewEntityManager()
	store := game.NewProgressStore(nil)
	system := NewRevealSystem(em, store, nil)
	system.rng = rand.New(rand.NewSource(1)) // 测试可复现

	cfg := config.DefaultRevealConfig()
	id := em.CreateEntity()
	em.AddComponent(id, &components.RevealComponent{
		Choices:         cfg.Choices,
		State:           components.RevealStateIdle,
		StartInterval:   cfg.StartInterval,
		EndInterval:     cfg.EndInterval,
		SpinDuration:    cfg.SpinDuration,
		CurveExponent:   cfg.CurveExponent,
		VisibleDuration: cfg.VisibleDuration,
		Cooldown:        cfg.Cooldown,
	})

	return em, system, id, store
}

func getReveal(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.RevealComponent {
	t.Helper()
	r, ok := ecs.GetComponent[*components.RevealComponent](em, id)
	if !ok {
		t.Fatal("转盘组件不存在")
	}
	return r
}

// stepUntilCommit 以小步长推进直到抽取结束
func stepUntilCommit(system *RevealSystem, r *components.RevealComponent) {
	for i := 0; i < 1000 && r.State == components.RevealStateGenerating; i++ {
		system.Update(0.016)
	}
}

// TestRevealCommitsOnce 验证一次抽取恰好提交一次，结果在候选集内
func TestRevealCommitsOnce(t *testing.T) {
	em, system, id, _ := newRevealFixture(t)
	r := getReveal(t, em, id)

	system.Request(id)
	if r.State != components.RevealStateGenerating {
		t.Fatal("Idle 状态请求后应进入 Generating")
	}

	stepUntilCommit(system, r)

	if !r.HasOutcome {
		t.Fatal("抽取结束后应有结果")
	}
	if r.CommitCount != 1 {
		t.Fatalf("应恰好提交一次, got %d", r.CommitCount)
	}
	if r.Outcome < 0 || r.Outcome >= len(r.Choices) {
		t.Fatalf("结果索引越界: %d", r.Outcome)
	}
	if r.State != components.RevealStateCooldown {
		t.Error("提交后应进入 Cooldown")
	}
	if !r.ShowResult {
		t.Error("提交后结果应处于展示状态")
	}
}

// TestRevealRequestDuringGenerating 验证抽取中的请求是空操作
func TestRevealRequestDuringGenerating(t *testing.T) {
	em, system, id, _ := newRevealFixture(t)
	r := getReveal(t, em, id)

	system.Request(id)
	system.Update(0.5)

	elapsed := r.SpinElapsed
	system.Request(id) // 抽取中重复请求

	if r.SpinElapsed != elapsed {
		t.Error("抽取中的请求不应重置进度")
	}
	if r.CommitCount != 0 {
		t.Error("抽取中的请求不应提交结果")
	}
}

// TestRevealRequestDuringCooldown 验证冷却中的请求不改变已提交结果
func TestRevealRequestDuringCooldown(t *testing.T) {
	em, system, id, _ := newRevealFixture(t)
	r := getReveal(t, em, id)

	system.Request(id)
	stepUntilCommit(system, r)

	outcome := r.Outcome
	commits := r.CommitCount

	// 冷却未到期的请求是空操作
	system.Request(id)
	if r.State != components.RevealStateCooldown {
		t.Fatal("冷却未到期不应开始新抽取")
	}
	if r.Outcome != outcome || r.CommitCount != commits {
		t.Error("冷却中的请求不应改变已提交结果")
	}
}

// TestRevealCooldownLazyTransition 验证冷却到期后下一次请求才转回 Idle 并开始新抽取
func TestRevealCooldownLazyTransition(t *testing.T) {
	em, system, id, _ := newRevealFixture(t)
	r := getReveal(t, em, id)

	system.Request(id)
	stepUntilCommit(system, r)

	// 走完冷却时间；状态仍是 Cooldown（惰性转换）
	for i := 0; i < 300; i++ {
		system.Update(0.016)
	}
	if r.State != components.RevealStateCooldown {
		t.Fatal("无请求时状态应保持 Cooldown")
	}
	if r.CooldownRemaining > 0 {
		// 冷却应已走完
		t.Fatalf("冷却应已到期, remaining=%v", r.CooldownRemaining)
	}

	// 冷却到期后的请求开始新抽取
	system.Request(id)
	if r.State != components.RevealStateGenerating {
		t.Fatal("冷却到期后的请求应开始新抽取")
	}

	stepUntilCommit(system, r)
	if r.CommitCount != 2 {
		t.Fatalf("第二次抽取应提交第二次, got %d", r.CommitCount)
	}
}

// TestRevealAutoHide 验证结果展示到期自动隐藏
func TestRevealAutoHide(t *testing.T) {
	em, system, id, _ := newRevealFixture(t)
	r := getReveal(t, em, id)

	system.Request(id)
	stepUntilCommit(system, r)

	if !r.ShowResult {
		t.Fatal("提交后结果应展示")
	}

	// 推进超过 VisibleDuration
	for i := 0; i < 300; i++ {
		system.Update(0.016)
	}
	if r.ShowResult {
		t.Error("展示到期后结果应自动隐藏")
	}
	if !r.HasOutcome {
		t.Error("自动隐藏不应清除结果本身")
	}
}

// TestRevealSelectionPersisted 验证提交时写入选择状态
func TestRevealSelectionPersisted(t *testing.T) {
	em, system, id, store := newRevealFixture(t)
	r := getReveal(t, em, id)

	system.Request(id)
	stepUntilCommit(system, r)

	idx, label, ok := store.Selection()
	if !ok {
		t.Fatal("提交后应存在选择状态")
	}
	if idx != r.Outcome {
		t.Errorf("选择索引: got %d, want %d", idx, r.Outcome)
	}
	if label != r.Choices[r.Outcome] {
		t.Errorf("选择标签: got %q, want %q", label, r.Choices[r.Outcome])
	}
}

// TestRevealOutcomeDistribution 验证结果大致均匀分布在候选集上
func TestRevealOutcomeDistribution(t *testing.T) {
	em, system, id, _ := newRevealFixture(t)
	r := getReveal(t, em, id)
	r.Cooldown = 0 // 加速测试

	counts := make(map[int]int)
	const runs = 200

	for i := 0; i < runs; i++ {
		system.Request(id)
		stepUntilCommit(system, r)
		counts[r.Outcome]++
		r.CooldownRemaining = 0
	}

	if r.CommitCount != runs {
		t.Fatalf("应提交 %d 次, got %d", runs, r.CommitCount)
	}

	// 每个候选项都应出现过（200 次抽取、5 个候选项）
	for i := range r.Choices {
		if counts[i] == 0 {
			t.Errorf("候选项 %d 从未被抽中", i)
		}
	}
}

// TestRevealEmptyChoices 验证空候选集的请求被忽略
func TestRevealEmptyChoices(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRevealSystem(em, nil, nil)

	id := em.CreateEntity()
	em.AddComponent(id, &components.RevealComponent{
		Choices: nil,
		State:   components.RevealStateIdle,
	})

	system.Request(id)

	r := getReveal(t, em, id)
	if r.State != components.RevealStateIdle {
		t.Error("空候选集的请求应保持 Idle")
	}
}
