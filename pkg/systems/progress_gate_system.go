package systems

import (
	"log"

	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/game"
)

// ProgressGateSystem 进度门系统
//
// 以固定间隔轮询所有类别计数器；当每个类别的计数都达到门槛时，
// 触发一次性的达标回调（通常是场景切换）并停止轮询。
//
// 边界策略：
//   - 空类别名使进度门永远无法达标（防御策略，只警告一次）
//   - 触发后再多的递增也不会二次触发，除非 Reset 重新武装
type ProgressGateSystem struct {
	store      *game.ProgressStore
	categories []config.CategoryGoal

	pollInterval float64
	elapsed      float64

	// fired 是否已触发（一次性）
	fired bool

	// warnedBlank 空类别名警告是否已输出
	warnedBlank bool

	// onSatisfied 达标回调
	onSatisfied func()
}

// NewProgressGateSystem 创建进度门系统
//
// 参数：
//   - store: 进度存储
//   - cfg: 收集配置（类别、门槛、轮询间隔）
//   - onSatisfied: 全部达标时调用一次的回调
func NewProgressGateSystem(store *game.ProgressStore, cfg *config.CollectionConfig, onSatisfied func()) *ProgressGateSystem {
	return &ProgressGateSystem{
		store:        store,
		categories:   cfg.Categories,
		pollInterval: cfg.PollInterval,
		onSatisfied:  onSatisfied,
	}
}

// Update 累积时间，到达轮询间隔时检查一次
func (s *ProgressGateSystem) Update(deltaTime float64) {
	if s.fired {
		return
	}

	s.elapsed += deltaTime
	if s.elapsed < s.pollInterval {
		return
	}
	s.elapsed = 0

	s.CheckNow()
}

// CheckNow 立即检查一次是否全部达标
//
// 返回：
//   - bool: 本次检查是否触发了达标回调
func (s *ProgressGateSystem) CheckNow() bool {
	if s.fired {
		return false
	}

	for _, goal := range s.categories {
		if goal.Name == "" {
			// 空类别名：进度门永远无法达标
			if !s.warnedBlank {
				log.Printf("[ProgressGate] Warning: blank category name, gate can never be satisfied")
				s.warnedBlank = true
			}
			return false
		}
		if s.store.Count(goal.Name) < goal.Threshold {
			return false
		}
	}

	s.fired = true
	log.Printf("[ProgressGate] All categories satisfied, firing transition")
	if s.onSatisfied != nil {
		s.onSatisfied()
	}
	return true
}

// Reset 清除所有计数器并重新武装进度门
func (s *ProgressGateSystem) Reset() {
	names := make([]string, len(s.categories))
	for i, goal := range s.categories {
		names[i] = goal.Name
	}
	if err := s.store.Reset(names); err != nil {
		log.Printf("[ProgressGate] Warning: reset incomplete: %v", err)
	}
	s.fired = false
	s.elapsed = 0
	log.Printf("[ProgressGate] Reset, gate re-armed")
}

// HasFired 进度门是否已触发
func (s *ProgressGateSystem) HasFired() bool {
	return s.fired
}
