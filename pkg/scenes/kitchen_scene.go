package scenes

import (
	"fmt"
	"image/color"

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

// MusicKitchen 厨房背景音乐ID
const MusicKitchen = "MUSIC_KITCHEN"

// KitchenScene 厨房场景
//
// 把下方的食材按配方顺序拖进锅里，配方完成后烤箱自动点火，
// 倒计时结束出炉成品菜。右上角的幸运转盘点击抽一次好运
type KitchenScene struct {
	ctx *Context

	entityManager  *ecs.EntityManager
	dragManager    *utils.DragManager
	dragSystem     *systems.DragSystem
	bakeSystem     *systems.BakeSystem
	revealSystem   *systems.RevealSystem
	hoverSystem    *systems.HoverSystem
	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *systems.RenderSystem
	buttonSystem   *systems.ButtonSystem

	pot    ecs.EntityID
	oven   ecs.EntityID
	reveal ecs.EntityID
}

// NewKitchenScene 创建厨房场景
func NewKitchenScene(ctx *Context) *KitchenScene {
	em := ecs.NewEntityManager()
	s := &KitchenScene{
		ctx:           ctx,
		entityManager: em,
		dragManager:   utils.NewDragManager(),
	}

	s.bakeSystem = systems.NewBakeSystem(em, ctx.AudioManager, ctx.RecipeConfig)
	s.dragSystem = systems.NewDragSystem(em, ctx.AudioManager, s.dragManager, func() {
		s.bakeSystem.Arm(s.oven)
	})
	s.revealSystem = systems.NewRevealSystem(em, ctx.ProgressStore, ctx.AudioManager)
	s.hoverSystem = systems.NewHoverSystem(em)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.renderSystem = systems.NewRenderSystem(em)
	s.buttonSystem = systems.NewButtonSystem(em)

	s.init()
	return s
}

func (s *KitchenScene) init() {
	recipe := s.ctx.RecipeConfig

	s.pot = entities.NewPotEntity(s.entityManager, recipe, 330, 280)
	s.oven = entities.NewOvenEntity(s.entityManager, recipe, 560, 280)
	s.reveal = entities.NewRevealEntity(s.entityManager, s.ctx.RevealConfig, 690, 110)

	// 食材沿底部一字排开，配方里的每种食材各一份
	x := 120.0
	for _, stage := range recipe.Stages {
		entities.NewIngredientEntity(s.entityManager, stage.IngredientID, stage.DisplayName, x, 520)
		x += 90
	}

	entities.NewButtonEntity(s.entityManager, "返回菜单", 100, 40, func() {
		s.ctx.SceneManager.LoadScene(config.SceneMainMenu)
	})
	entities.NewButtonEntity(s.entityManager, "重新做一份", 100, 100, func() {
		s.restartRecipe()
	})

	if s.ctx.AudioManager != nil {
		s.ctx.AudioManager.PlayMusic(MusicKitchen)
	}
}

// restartRecipe 从配方配置重建阶段状态
//
// 覆盖锅上的阶段组件、熄灭烤箱、清掉剩余食材后重新摆满一排
func (s *KitchenScene) restartRecipe() {
	recipe := s.ctx.RecipeConfig

	s.entityManager.AddComponent(s.pot, &components.StageComponent{
		RecipeName: recipe.Name,
		Required:   recipe.IngredientIDs(),
	})
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.pot); ok {
		sprite.Color = color.RGBA{R: 200, G: 160, B: 120, A: 255}
		sprite.Label = recipe.Name
	}

	if oven, ok := ecs.GetComponent[*components.OvenComponent](s.entityManager, s.oven); ok {
		oven.IsBaking = false
		oven.Elapsed = 0
	}

	for _, id := range ecs.GetEntitiesWith1[*components.IngredientComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	x := 120.0
	for _, stage := range recipe.Stages {
		entities.NewIngredientEntity(s.entityManager, stage.IngredientID, stage.DisplayName, x, 520)
		x += 90
	}
}

// Update 更新厨房场景
func (s *KitchenScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.hoverSystem.Update(deltaTime)
	s.updateRevealClick()
	s.dragSystem.Update(deltaTime)
	s.bakeSystem.Update(deltaTime)
	s.revealSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// updateRevealClick 点击转盘请求一次抽取
func (s *KitchenScene) updateRevealClick() {
	pressed, px, py := utils.IsPointerJustPressed()
	if !pressed {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.reveal)
	if !ok {
		return
	}
	click, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, s.reveal)
	if pointInRect(float64(px), float64(py), pos.X, pos.Y, click.Width, click.Height) {
		s.revealSystem.Request(s.reveal)
	}
}

// Draw 绘制厨房场景
func (s *KitchenScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 66, G: 52, B: 46, A: 255})

	s.renderSystem.Draw(screen)
	s.buttonSystem.Draw(screen)
	s.drawHUD(screen)
}

// drawHUD 显示配方进度、烘烤状态与转盘结果
func (s *KitchenScene) drawHUD(screen *ebiten.Image) {
	if stage, ok := ecs.GetComponent[*components.StageComponent](s.entityManager, s.pot); ok {
		var line string
		if stage.Completed {
			line = fmt.Sprintf("%s 完成!", stage.RecipeName)
		} else {
			next := s.ctx.RecipeConfig.Stages[stage.Index].DisplayName
			line = fmt.Sprintf("%s %d/%d 下一样: %s", stage.RecipeName, stage.Index, len(stage.Required), next)
		}
		ebitenutil.DebugPrintAt(screen, line, 240, 16)
	}

	if oven, ok := ecs.GetComponent[*components.OvenComponent](s.entityManager, s.oven); ok && oven.IsBaking {
		remaining := oven.BakeDuration - oven.Elapsed
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("烘烤中 %.1fs", remaining), 520, 210)
	}

	s.drawRevealState(screen)
}

// drawRevealState 转盘闪烁中显示当前候选项，提交后展示结果
func (s *KitchenScene) drawRevealState(screen *ebiten.Image) {
	r, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, s.reveal)
	if !ok || len(r.Choices) == 0 {
		return
	}

	switch {
	case r.State == components.RevealStateGenerating:
		ebitenutil.DebugPrintAt(screen, r.Choices[r.CurrentFlash], 640, 190)
	case r.ShowResult:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("恭喜: %s", r.Choices[r.Outcome]), 620, 190)
	}
}

var _ game.Scene = (*KitchenScene)(nil)
