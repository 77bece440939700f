package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/entities"
	"github.com/gonewx/kitchen/pkg/game"
	"github.com/gonewx/kitchen/pkg/systems"
	"github.com/gonewx/kitchen/pkg/utils"
)

// MusicMarket 集市背景音乐ID
const MusicMarket = "MUSIC_MARKET"

// 集市的摊位刷新参数
const (
	marketRespawnInterval = 2.0
	marketMaxCollectibles = 8
)

// MarketScene 集市场景
//
// 点击摊位上的物品收集食材，所有类别的计数都达标后进度门
// 触发，自动切换到厨房场景。右侧的弹射器按住蓄力、松开把
// 货筐弹上货架（纯玩法点缀，不参与进度）
type MarketScene struct {
	ctx *Context

	entityManager  *ecs.EntityManager
	collectSystem  *systems.CollectSystem
	gateSystem     *systems.ProgressGateSystem
	hoverSystem    *systems.HoverSystem
	chargeSystem   *systems.ChargeLaunchSystem
	physicsSystem  *systems.PhysicsSystem
	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *systems.RenderSystem
	buttonSystem   *systems.ButtonSystem

	charger ecs.EntityID
	rng     *rand.Rand

	// respawnElapsed 距上次补货的累计时间
	respawnElapsed float64
}

// NewMarketScene 创建集市场景
func NewMarketScene(ctx *Context) *MarketScene {
	em := ecs.NewEntityManager()
	s := &MarketScene{
		ctx:           ctx,
		entityManager: em,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	s.collectSystem = systems.NewCollectSystem(em, ctx.ProgressStore, ctx.AudioManager, ctx.CollectionConfig)
	s.gateSystem = systems.NewProgressGateSystem(ctx.ProgressStore, ctx.CollectionConfig, func() {
		ctx.SceneManager.LoadScene(ctx.CollectionConfig.NextScene)
	})
	s.hoverSystem = systems.NewHoverSystem(em)
	s.chargeSystem = systems.NewChargeLaunchSystem(em, ctx.AudioManager)
	s.physicsSystem = systems.NewPhysicsSystem(em, config.GameWindowWidth, config.GameWindowHeight)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.renderSystem = systems.NewRenderSystem(em)
	s.buttonSystem = systems.NewButtonSystem(em)

	s.init()
	return s
}

func (s *MarketScene) init() {
	for i := 0; i < marketMaxCollectibles; i++ {
		s.spawnCollectible()
	}

	s.charger = entities.NewChargerEntity(s.entityManager, s.ctx.ChargeConfig, 680, 480)
	entities.NewLaunchableEntity(s.entityManager, "货筐", 610, 480)
	entities.NewLaunchableEntity(s.entityManager, "货筐", 750, 480)

	entities.NewButtonEntity(s.entityManager, "返回菜单", 100, 40, func() {
		s.ctx.SceneManager.LoadScene(config.SceneMainMenu)
	})

	if s.ctx.AudioManager != nil {
		s.ctx.AudioManager.PlayMusic(MusicMarket)
	}
}

// spawnCollectible 在摊位区随机位置刷出一个物品
// 物品显示名取自类别列表，偶尔混入不计数的杂货
func (s *MarketScene) spawnCollectible() {
	goals := s.ctx.CollectionConfig.Categories
	var name string
	if s.rng.Intn(6) == 0 {
		name = "蘑菇" // 不属于任何类别
	} else {
		name = goals[s.rng.Intn(len(goals))].Name
	}

	x := 80 + s.rng.Float64()*420
	y := 140 + s.rng.Float64()*320
	entities.NewCollectibleEntity(s.entityManager, name, x, y)
}

// Update 更新集市场景
func (s *MarketScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.hoverSystem.Update(deltaTime)
	s.updateCharger(deltaTime)
	s.updateCollect()
	s.physicsSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.gateSystem.Update(deltaTime)
	s.respawn(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// updateCharger 只有指针落在弹射器上按下才开始蓄力，
// 避免和收集点击互相干扰
func (s *MarketScene) updateCharger(deltaTime float64) {
	charge, ok := ecs.GetComponent[*components.ChargeComponent](s.entityManager, s.charger)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.charger)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.charger)

	pressed, px, py := utils.IsPointerJustPressed()
	if pressed && pointInRect(float64(px), float64(py), pos.X, pos.Y, sprite.Width, sprite.Height) {
		s.chargeSystem.BeginHold(s.charger)
		return
	}

	if charge.IsHolding {
		if utils.IsPointerPressed() {
			s.chargeSystem.Advance(s.charger, deltaTime)
		} else {
			s.chargeSystem.EndHold(s.charger)
		}
	}
}

// updateCollect 蓄力期间不收集，其余时间把点击交给收集系统
func (s *MarketScene) updateCollect() {
	if charge, ok := ecs.GetComponent[*components.ChargeComponent](s.entityManager, s.charger); ok && charge.IsHolding {
		return
	}
	pressed, x, y := utils.IsPointerJustPressed()
	if !pressed {
		return
	}
	s.collectSystem.CollectAt(float64(x), float64(y))
}

// respawn 摊位补货
func (s *MarketScene) respawn(deltaTime float64) {
	s.respawnElapsed += deltaTime
	if s.respawnElapsed < marketRespawnInterval {
		return
	}
	s.respawnElapsed = 0

	count := len(ecs.GetEntitiesWith1[*components.CollectibleComponent](s.entityManager))
	if count < marketMaxCollectibles {
		s.spawnCollectible()
	}
}

// Draw 绘制集市场景
func (s *MarketScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 52, G: 64, B: 48, A: 255})

	s.renderSystem.Draw(screen)
	s.buttonSystem.Draw(screen)
	s.drawHUD(screen)
}

// drawHUD 顶部显示各类别进度，弹射器上方显示蓄力条
func (s *MarketScene) drawHUD(screen *ebiten.Image) {
	x := 220
	for _, g := range s.ctx.CollectionConfig.Categories {
		line := fmt.Sprintf("%s %d/%d", g.Name, s.ctx.ProgressStore.Count(g.Name), g.Threshold)
		ebitenutil.DebugPrintAt(screen, line, x, 16)
		x += 110
	}

	if charge, ok := ecs.GetComponent[*components.ChargeComponent](s.entityManager, s.charger); ok && charge.IsHolding {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("蓄力 %.0f", charge.Value), 650, 420)
	}
}

var _ game.Scene = (*MarketScene)(nil)
