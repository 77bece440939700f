package entities

import (
	"image/color"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// NewRevealEntity 创建幸运转盘实体
// 点击由场景转发给 RevealSystem.Request
func NewRevealEntity(manager *ecs.EntityManager, cfg *config.RevealConfig, x, y float64) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(e, &components.SpriteComponent{
		Width:  150,
		Height: 150,
		Color:  color.RGBA{R: 170, G: 110, B: 190, A: 255},
		Label:  "幸运转盘",
	})

	manager.AddComponent(e, &components.ClickableComponent{
		Width:     150,
		Height:    150,
		IsEnabled: true,
	})

	manager.AddComponent(e, &components.HoverHighlightComponent{Intensity: 1.0})

	manager.AddComponent(e, &components.RevealComponent{
		Choices:         cfg.Choices,
		State:           components.RevealStateIdle,
		StartInterval:   cfg.StartInterval,
		EndInterval:     cfg.EndInterval,
		SpinDuration:    cfg.SpinDuration,
		CurveExponent:   cfg.CurveExponent,
		VisibleDuration: cfg.VisibleDuration,
		Cooldown:        cfg.Cooldown,
	})

	return e
}

// NewChargerEntity 创建蓄力弹射器实体
func NewChargerEntity(manager *ecs.EntityManager, cfg *config.ChargeConfig, x, y float64) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(e, &components.SpriteComponent{
		Width:  60,
		Height: 60,
		Color:  color.RGBA{R: 80, G: 80, B: 160, A: 255},
		Label:  "弹射器",
	})

	manager.AddComponent(e, &components.ChargeComponent{
		MinImpulse:     cfg.MinImpulse,
		MaxImpulse:     cfg.MaxImpulse,
		ChargeDuration: cfg.ChargeDuration,
		Curve:          cfg.Curve,
		AngleDegrees:   cfg.AngleDegrees,
		OncePerTarget:  cfg.OncePerTarget,
		DespawnDelay:   cfg.DespawnDelay,
	})

	return e
}
