package systems

import (
	"log"
	"strings"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/game"
	"github.com/gonewx/kitchen/pkg/utils"
)

// SoundCollect 收集成功时播放的音效ID
const SoundCollect = "SOUND_COLLECT"

// CollectSystem 收集系统
//
// 点击可收集实体时把它归入一个类别并递增对应计数器。
// 归类规则：按配置的类别顺序，对实体显示名做不区分大小写的
// 子串匹配，取第一个命中的类别；无命中则丢弃（不计数）。
type CollectSystem struct {
	entityManager *ecs.EntityManager
	store         *game.ProgressStore
	audioManager  *game.AudioManager // 可为 nil
	categories    []config.CategoryGoal
}

// NewCollectSystem 创建收集系统
//
// 参数：
//   - em: 实体管理器
//   - store: 进度存储
//   - am: 音频管理器，可为 nil
//   - cfg: 收集配置（提供类别顺序）
func NewCollectSystem(em *ecs.EntityManager, store *game.ProgressStore, am *game.AudioManager, cfg *config.CollectionConfig) *CollectSystem {
	return &CollectSystem{
		entityManager: em,
		store:         store,
		audioManager:  am,
		categories:    cfg.Categories,
	}
}

// Update 处理本帧的点击收集
func (s *CollectSystem) Update(deltaTime float64) {
	pressed, x, y := utils.IsPointerJustPressed()
	if !pressed {
		return
	}
	s.CollectAt(float64(x), float64(y))
}

// CollectAt 收集 (x, y) 处的可收集实体（若有）
//
// 返回：
//   - bool: 是否收集到了实体
func (s *CollectSystem) CollectAt(x, y float64) bool {
	entities := ecs.GetEntitiesWith3[*components.CollectibleComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		click, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !click.IsEnabled {
			continue
		}
		if !pointInRect(x, y, pos.X, pos.Y, click.Width, click.Height) {
			continue
		}
		return s.Collect(id)
	}
	return false
}

// Collect 收集指定实体：归类、计数、销毁
//
// 返回：
//   - bool: 实体是否被归入某个类别并计数
func (s *CollectSystem) Collect(id ecs.EntityID) bool {
	c, ok := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
	if !ok || c.IsCollected {
		return false
	}
	c.IsCollected = true
	s.entityManager.DestroyEntity(id)

	category, ok := s.CategoryFor(c.DisplayName)
	if !ok {
		// 无命中类别：实体消失但不计数
		log.Printf("[Collect] %q matched no category, discarded", c.DisplayName)
		return false
	}

	count := s.store.Increment(category)
	log.Printf("[Collect] %q -> category %q (count=%d)", c.DisplayName, category, count)

	if s.audioManager != nil {
		s.audioManager.PlaySound(SoundCollect)
	}
	return true
}

// CategoryFor 按类别顺序对显示名做不区分大小写的子串匹配
//
// 返回：
//   - string: 第一个命中的类别名
//   - bool: 是否有命中
func (s *CollectSystem) CategoryFor(displayName string) (string, bool) {
	lower := strings.ToLower(displayName)
	for _, goal := range s.categories {
		if goal.Name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(goal.Name)) {
			return goal.Name, true
		}
	}
	return "", false
}
