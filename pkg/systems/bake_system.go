package systems

import (
	"image/color"
	"log"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/game"
)

// SoundBakeDone 出炉时播放的音效ID
const SoundBakeDone = "SOUND_BAKE_DONE"

// BakeSystem 烘烤系统
//
// 烤箱点火后倒计时，到时生成成品菜实体并播放音效。
// 成品菜带寿命组件，超时自动消失；重复点火会重启倒计时。
type BakeSystem struct {
	entityManager *ecs.EntityManager
	audioManager  *game.AudioManager // 可为 nil
	recipe        *config.RecipeConfig
}

// NewBakeSystem 创建烘烤系统
func NewBakeSystem(em *ecs.EntityManager, am *game.AudioManager, recipe *config.RecipeConfig) *BakeSystem {
	return &BakeSystem{
		entityManager: em,
		audioManager:  am,
		recipe:        recipe,
	}
}

// Arm 点火烤箱，开始（或重启）烘烤倒计时
func (s *BakeSystem) Arm(ovenID ecs.EntityID) {
	oven, ok := ecs.GetComponent[*components.OvenComponent](s.entityManager, ovenID)
	if !ok {
		log.Printf("[Bake] Warning: entity %d has no oven component", ovenID)
		return
	}
	oven.IsBaking = true
	oven.Elapsed = 0
	log.Printf("[Bake] Oven armed, %s ready in %.1fs", oven.DishName, oven.BakeDuration)
}

// Update 推进所有烤箱的倒计时
func (s *BakeSystem) Update(deltaTime float64) {
	ovens := ecs.GetEntitiesWith2[*components.OvenComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ovens {
		oven, _ := ecs.GetComponent[*components.OvenComponent](s.entityManager, id)
		if !oven.IsBaking {
			continue
		}

		oven.Elapsed += deltaTime
		if oven.Elapsed < oven.BakeDuration {
			continue
		}

		oven.IsBaking = false
		oven.Elapsed = 0
		oven.DishesBaked++
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.spawnDish(oven, pos)
	}
}

// spawnDish 在烤箱旁生成带寿命的成品菜实体
func (s *BakeSystem) spawnDish(oven *components.OvenComponent, ovenPos *components.PositionComponent) {
	dish := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(dish, &components.PositionComponent{
		X: ovenPos.X + 90,
		Y: ovenPos.Y,
	})
	s.entityManager.AddComponent(dish, &components.SpriteComponent{
		Width:  64,
		Height: 40,
		Color:  color.RGBA{R: 230, G: 180, B: 60, A: 255},
		Label:  oven.DishName,
	})
	s.entityManager.AddComponent(dish, &components.LifetimeComponent{
		MaxLifetime: s.recipe.DishLifetime,
	})

	log.Printf("[Bake] %s is done (total %d)", oven.DishName, oven.DishesBaked)
	if s.audioManager != nil {
		s.audioManager.PlaySound(SoundBakeDone)
	}
}
