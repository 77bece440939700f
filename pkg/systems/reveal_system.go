package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/game"
	"github.com/gonewx/kitchen/pkg/utils"
)

// SoundRevealCommit 结果提交时播放的音效ID
const SoundRevealCommit = "SOUND_REVEAL_DING"

// RevealSystem 幸运转盘系统
//
// 驱动 RevealComponent 的状态机：
//
//	Idle → Generating → Cooldown → Idle
//
// Generating 期间以从快到慢的间隔随机闪烁候选项（间隔经幂曲线
// 从 StartInterval 过渡到 EndInterval），SpinDuration 结束时提交
// 一次均匀随机的最终结果、播放音效、写入选择状态，并安排
// VisibleDuration 后自动隐藏（下次请求会取消隐藏计时）。
//
// Cooldown → Idle 的转换是惰性的：Update 只递减剩余时间，
// 状态切换发生在下一次 Request 检查时。
type RevealSystem struct {
	entityManager *ecs.EntityManager
	store         *game.ProgressStore // 可为 nil（不持久化选择结果）
	audioManager  *game.AudioManager  // 可为 nil（无声模式）
	rng           *rand.Rand
}

// NewRevealSystem 创建幸运转盘系统
//
// 参数：
//   - em: 实体管理器
//   - store: 进度存储，提交结果时写入选择状态，可为 nil
//   - am: 音频管理器，可为 nil
func NewRevealSystem(em *ecs.EntityManager, store *game.ProgressStore, am *game.AudioManager) *RevealSystem {
	return &RevealSystem{
		entityManager: em,
		store:         store,
		audioManager:  am,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Request 请求一次抽取
//
// Idle 状态开始抽取；Generating 或未到期的 Cooldown 状态下是
// 空操作，已提交的结果保持不变。冷却是否到期在此处惰性检查。
//
// 参数：
//   - id: 转盘实体ID
func (s *RevealSystem) Request(id ecs.EntityID) {
	r, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
	if !ok {
		log.Printf("[Reveal] Warning: entity %d has no reveal component", id)
		return
	}

	if len(r.Choices) == 0 {
		log.Printf("[Reveal] Warning: empty choice set, request ignored")
		return
	}

	switch r.State {
	case components.RevealStateGenerating:
		// 抽取中，忽略请求
		return
	case components.RevealStateCooldown:
		if r.CooldownRemaining > 0 {
			// 冷却未到期，忽略请求
			return
		}
		// 冷却已到期：惰性转回 Idle 并继续开始新抽取
		r.State = components.RevealStateIdle
	}

	// 开始新抽取；取消未到期的结果隐藏计时
	r.State = components.RevealStateGenerating
	r.SpinElapsed = 0
	r.FlashTimer = 0
	r.ShowResult = false
	r.VisibleRemaining = 0
	log.Printf("[Reveal] Spin started (%d choices)", len(r.Choices))
}

// Update 推进所有转盘实体的状态机
func (s *RevealSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.RevealComponent](s.entityManager)

	for _, id := range entities {
		r, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
		if !ok {
			continue
		}

		switch r.State {
		case components.RevealStateGenerating:
			s.updateGenerating(r, deltaTime)
		case components.RevealStateCooldown:
			if r.CooldownRemaining > 0 {
				r.CooldownRemaining -= deltaTime
			}
		}

		// 结果展示到期自动隐藏
		if r.ShowResult {
			r.VisibleRemaining -= deltaTime
			if r.VisibleRemaining <= 0 {
				r.ShowResult = false
			}
		}
	}
}

// updateGenerating 推进闪烁并在时间到时提交结果
func (s *RevealSystem) updateGenerating(r *components.RevealComponent, deltaTime float64) {
	r.SpinElapsed += deltaTime

	if r.SpinElapsed >= r.SpinDuration {
		s.commit(r)
		return
	}

	r.FlashTimer -= deltaTime
	if r.FlashTimer <= 0 {
		r.CurrentFlash = s.rng.Intn(len(r.Choices))

		// 闪烁间隔从快到慢：进度经幂曲线映射后插值
		progress := utils.EasePower(r.SpinElapsed/r.SpinDuration, r.CurveExponent)
		r.FlashTimer = utils.Lerp(r.StartInterval, r.EndInterval, progress)
	}
}

// commit 提交最终结果（每次抽取恰好一次）
func (s *RevealSystem) commit(r *components.RevealComponent) {
	r.Outcome = s.rng.Intn(len(r.Choices))
	r.HasOutcome = true
	r.CommitCount++
	r.CurrentFlash = r.Outcome

	// 展示结果并安排自动隐藏
	r.ShowResult = true
	r.VisibleRemaining = r.VisibleDuration

	// 进入冷却；时长固定，与抽取时长无关
	r.State = components.RevealStateCooldown
	r.CooldownRemaining = r.Cooldown

	label := r.Choices[r.Outcome]
	log.Printf("[Reveal] Committed outcome %d (%s)", r.Outcome, label)

	if s.store != nil {
		s.store.SetSelection(r.Outcome, label)
	}
	if s.audioManager != nil {
		s.audioManager.PlaySound(SoundRevealCommit)
	}
}
