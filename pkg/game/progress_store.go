package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// ProgressStore 收集进度与抽奖结果的持久化存储
//
// 职责：
//   - 按类别维护持久化的收集计数器
//   - 保存/读取幸运转盘的一次性选择结果（索引 + 标签）
//
// 存储格式（gdata 对象属性）：
//   - 计数器属性键 = "count_" + 小写类别名，值为十进制整数文本
//   - 读取不存在的计数器返回 0；显式重置时属性被删除
//
// 架构说明：
//   - 实例由组合根创建并注入到需要它的系统，不是全局单例
//   - gdataManager 可为 nil（降级模式，仅内存计数，不持久化）
//   - 单写单读，全部访问发生在游戏逻辑线程上，无需加锁
type ProgressStore struct {
	gdataManager *gdata.Manager

	// 降级模式下的内存计数
	memCounts map[string]int

	// 降级模式下的选择结果
	memSelectionIndex int
	memSelectionLabel string
	memHasSelection   bool
}

// 存储键常量
const (
	progressObject = "progress"
	countKeyPrefix = "count_"

	selectionObject        = "selection"
	selectionIndexProperty = "index"
	selectionLabelProperty = "label"
)

// NewProgressStore 创建进度存储
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
func NewProgressStore(gdataManager *gdata.Manager) *ProgressStore {
	if gdataManager == nil {
		log.Printf("[ProgressStore] Warning: no storage manager, counters will not persist")
	}
	return &ProgressStore{
		gdataManager: gdataManager,
		memCounts:    make(map[string]int),
	}
}

// countKey 返回类别对应的属性键（前缀 + 小写类别名）
func countKey(category string) string {
	return countKeyPrefix + strings.ToLower(category)
}

// Count 读取类别的当前计数
// 不存在的计数器返回 0
func (ps *ProgressStore) Count(category string) int {
	if ps.gdataManager == nil {
		return ps.memCounts[countKey(category)]
	}

	key := countKey(category)
	if !ps.gdataManager.ObjectPropExists(progressObject, key) {
		return 0
	}

	data, err := ps.gdataManager.LoadObjectProp(progressObject, key)
	if err != nil {
		log.Printf("[ProgressStore] Warning: failed to load counter %q: %v", key, err)
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		log.Printf("[ProgressStore] Warning: corrupt counter %q: %v", key, err)
		return 0
	}
	return n
}

// Increment 将类别计数加1并返回新值
// 计数单调不减，只有 Reset 能清零
func (ps *ProgressStore) Increment(category string) int {
	n := ps.Count(category) + 1

	key := countKey(category)
	if ps.gdataManager == nil {
		ps.memCounts[key] = n
		return n
	}

	if err := ps.gdataManager.SaveObjectProp(progressObject, key, []byte(strconv.Itoa(n))); err != nil {
		log.Printf("[ProgressStore] Warning: failed to save counter %q: %v", key, err)
	}
	return n
}

// Reset 删除给定类别的所有计数器
//
// 参数：
//   - categories: 要清除的类别名列表
//
// 返回：
//   - error: 任一删除失败时返回首个错误（其余仍会尝试）
func (ps *ProgressStore) Reset(categories []string) error {
	var firstErr error

	for _, c := range categories {
		key := countKey(c)
		if ps.gdataManager == nil {
			delete(ps.memCounts, key)
			continue
		}
		if !ps.gdataManager.ObjectPropExists(progressObject, key) {
			continue
		}
		if err := ps.gdataManager.DeleteObjectProp(progressObject, key); err != nil {
			log.Printf("[ProgressStore] Warning: failed to delete counter %q: %v", key, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to delete counter %q: %w", key, err)
			}
		}
	}

	log.Printf("[ProgressStore] Counters reset (%d categories)", len(categories))
	return firstErr
}

// SetSelection 保存幸运转盘的选择结果
// 每局写入一次，由后续场景读取一次
//
// 参数：
//   - index: 结果索引
//   - label: 结果标签
func (ps *ProgressStore) SetSelection(index int, label string) {
	if ps.gdataManager == nil {
		ps.memSelectionIndex = index
		ps.memSelectionLabel = label
		ps.memHasSelection = true
		return
	}

	if err := ps.gdataManager.SaveObjectProp(selectionObject, selectionIndexProperty, []byte(strconv.Itoa(index))); err != nil {
		log.Printf("[ProgressStore] Warning: failed to save selection index: %v", err)
	}
	if err := ps.gdataManager.SaveObjectProp(selectionObject, selectionLabelProperty, []byte(label)); err != nil {
		log.Printf("[ProgressStore] Warning: failed to save selection label: %v", err)
	}
}

// Selection 读取幸运转盘的选择结果
//
// 返回：
//   - int: 结果索引
//   - string: 结果标签
//   - bool: 是否存在已保存的结果
func (ps *ProgressStore) Selection() (int, string, bool) {
	if ps.gdataManager == nil {
		return ps.memSelectionIndex, ps.memSelectionLabel, ps.memHasSelection
	}

	if !ps.gdataManager.ObjectPropExists(selectionObject, selectionIndexProperty) {
		return 0, "", false
	}

	idxData, err := ps.gdataManager.LoadObjectProp(selectionObject, selectionIndexProperty)
	if err != nil {
		log.Printf("[ProgressStore] Warning: failed to load selection index: %v", err)
		return 0, "", false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(string(idxData)))
	if err != nil {
		log.Printf("[ProgressStore] Warning: corrupt selection index: %v", err)
		return 0, "", false
	}

	var label string
	if ps.gdataManager.ObjectPropExists(selectionObject, selectionLabelProperty) {
		labelData, err := ps.gdataManager.LoadObjectProp(selectionObject, selectionLabelProperty)
		if err == nil {
			label = string(labelData)
		}
	}

	return idx, label, true
}
