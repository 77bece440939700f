package game

import (
	"testing"
)

func TestProgressStore_CountDefaultZero(t *testing.T) {
	ps := NewProgressStore(newTestGdataManager(t, "test_progress_zero"))

	if got := ps.Count("番茄"); got != 0 {
		t.Errorf("不存在的计数器应返回 0, got %d", got)
	}
}

func TestProgressStore_Increment(t *testing.T) {
	ps := NewProgressStore(newTestGdataManager(t, "test_progress_inc"))

	if got := ps.Increment("Cheese"); got != 1 {
		t.Errorf("首次递增应返回 1, got %d", got)
	}
	if got := ps.Increment("Cheese"); got != 2 {
		t.Errorf("再次递增应返回 2, got %d", got)
	}

	// 键名做小写归一化：大小写不同的类别名命中同一个计数器
	if got := ps.Count("cheese"); got != 2 {
		t.Errorf("小写查询应命中同一计数器, got %d", got)
	}
	if got := ps.Count("CHEESE"); got != 2 {
		t.Errorf("大写查询应命中同一计数器, got %d", got)
	}
}

func TestProgressStore_Reset(t *testing.T) {
	ps := NewProgressStore(newTestGdataManager(t, "test_progress_reset"))

	ps.Increment("a")
	ps.Increment("a")
	ps.Increment("b")

	if err := ps.Reset([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if ps.Count("a") != 0 || ps.Count("b") != 0 {
		t.Error("重置后所有计数器应读为 0")
	}

	// 重置后可以重新计数
	if got := ps.Increment("a"); got != 1 {
		t.Errorf("重置后递增应从 1 开始, got %d", got)
	}
}

func TestProgressStore_Persistence(t *testing.T) {
	manager := newTestGdataManager(t, "test_progress_persist")

	ps := NewProgressStore(manager)
	ps.Increment("番茄")
	ps.Increment("番茄")

	// 新的 store 实例共享同一存储，应读到已保存的计数
	ps2 := NewProgressStore(manager)
	if got := ps2.Count("番茄"); got != 2 {
		t.Errorf("持久化计数应为 2, got %d", got)
	}
}

func TestProgressStore_Selection(t *testing.T) {
	ps := NewProgressStore(newTestGdataManager(t, "test_progress_sel"))

	if _, _, ok := ps.Selection(); ok {
		t.Fatal("未写入时不应存在选择结果")
	}

	ps.SetSelection(3, "神秘菜谱")

	idx, label, ok := ps.Selection()
	if !ok {
		t.Fatal("写入后应存在选择结果")
	}
	if idx != 3 {
		t.Errorf("索引: got %d, want 3", idx)
	}
	if label != "神秘菜谱" {
		t.Errorf("标签: got %q, want 神秘菜谱", label)
	}
}

func TestProgressStore_DegradedMode(t *testing.T) {
	// gdataManager 为 nil 时走内存模式，行为应一致
	ps := NewProgressStore(nil)

	if ps.Count("x") != 0 {
		t.Error("降级模式：不存在的计数器应返回 0")
	}
	ps.Increment("x")
	ps.Increment("x")
	if ps.Count("X") != 2 {
		t.Error("降级模式：计数与大小写归一化应正常工作")
	}

	if err := ps.Reset([]string{"x"}); err != nil {
		t.Fatalf("降级模式 Reset 不应报错: %v", err)
	}
	if ps.Count("x") != 0 {
		t.Error("降级模式：重置后应读为 0")
	}

	ps.SetSelection(1, "label")
	if _, label, ok := ps.Selection(); !ok || label != "label" {
		t.Error("降级模式：选择结果应可读回")
	}
}
