package systems

import (
	"testing"

	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/game"
)

func newGateFixture(goals []config.CategoryGoal, pollInterval float64) (*game.ProgressStore, *ProgressGateSystem, *int) {
	store := game.NewProgressStore(nil) // 内存模式
	fires := 0
	cfg := &config.CollectionConfig{
		Categories:   goals,
		PollInterval: pollInterval,
		NextScene:    config.SceneKitchen,
	}
	gate := NewProgressGateSystem(store, cfg, func() { fires++ })
	return store, gate, &fires
}

// TestGateFiresExactlyOnce 验证：部分达标不触发；全部达标恰好触发一次；
// 后续递增不再触发
func TestGateFiresExactlyOnce(t *testing.T) {
	goals := []config.CategoryGoal{
		{Name: "a", Threshold: 1},
		{Name: "b", Threshold: 1},
		{Name: "c", Threshold: 1},
		{Name: "d", Threshold: 1},
		{Name: "e", Threshold: 1},
	}
	store, gate, fires := newGateFixture(goals, 0.5)

	// {a:1,b:1,c:0,d:1,e:1} → 不触发
	for _, n := range []string{"a", "b", "d", "e"} {
		store.Increment(n)
	}
	if gate.CheckNow() {
		t.Fatal("部分达标不应触发")
	}
	if *fires != 0 {
		t.Fatalf("回调不应被调用, got %d", *fires)
	}

	// c 达标 → 恰好触发一次
	store.Increment("c")
	if !gate.CheckNow() {
		t.Fatal("全部达标应触发")
	}
	if *fires != 1 {
		t.Fatalf("回调应被调用一次, got %d", *fires)
	}

	// 后续递增与检查不再触发
	store.Increment("a")
	gate.CheckNow()
	gate.Update(10.0)
	if *fires != 1 {
		t.Fatalf("触发后不应再次触发, got %d", *fires)
	}
	if !gate.HasFired() {
		t.Error("HasFired 应为 true")
	}
}

// TestGatePollingInterval 验证轮询按固定间隔进行
func TestGatePollingInterval(t *testing.T) {
	goals := []config.CategoryGoal{{Name: "a", Threshold: 1}}
	store, gate, fires := newGateFixture(goals, 1.0)

	store.Increment("a")

	// 未到轮询间隔，不检查
	gate.Update(0.4)
	if *fires != 0 {
		t.Fatal("未到轮询间隔不应检查")
	}

	// 累积到间隔后检查并触发
	gate.Update(0.7)
	if *fires != 1 {
		t.Fatalf("到达轮询间隔应检查并触发, got %d", *fires)
	}
}

// TestGateThresholds 验证门槛大于1的情况
func TestGateThresholds(t *testing.T) {
	goals := []config.CategoryGoal{
		{Name: "番茄", Threshold: 2},
		{Name: "奶酪", Threshold: 1},
	}
	store, gate, fires := newGateFixture(goals, 0.5)

	store.Increment("番茄")
	store.Increment("奶酪")
	if gate.CheckNow() {
		t.Fatal("番茄未达标不应触发")
	}

	store.Increment("番茄")
	if !gate.CheckNow() {
		t.Fatal("全部达标应触发")
	}
	if *fires != 1 {
		t.Fatalf("want 1 fire, got %d", *fires)
	}
}

// TestGateBlankCategory 验证空类别名使进度门永远无法达标
func TestGateBlankCategory(t *testing.T) {
	goals := []config.CategoryGoal{
		{Name: "a", Threshold: 1},
		{Name: "", Threshold: 1},
	}
	store, gate, fires := newGateFixture(goals, 0.5)

	store.Increment("a")
	// 空类别名的计数器即使有值也不达标
	store.Increment("")

	if gate.CheckNow() {
		t.Fatal("含空类别名的进度门不应触发")
	}
	gate.Update(100)
	if *fires != 0 {
		t.Fatal("含空类别名的进度门永远不应触发")
	}
}

// TestGateReset 验证重置后计数清零且进度门可再次触发
func TestGateReset(t *testing.T) {
	goals := []config.CategoryGoal{{Name: "a", Threshold: 1}}
	store, gate, fires := newGateFixture(goals, 0.5)

	store.Increment("a")
	gate.CheckNow()
	if *fires != 1 {
		t.Fatalf("want 1 fire, got %d", *fires)
	}

	gate.Reset()

	if store.Count("a") != 0 {
		t.Error("重置后计数器应读为 0")
	}
	if gate.HasFired() {
		t.Error("重置后进度门应重新武装")
	}

	// 再次达标可再次触发
	store.Increment("a")
	if !gate.CheckNow() {
		t.Fatal("重置后达标应可再次触发")
	}
	if *fires != 2 {
		t.Fatalf("want 2 fires, got %d", *fires)
	}
}
