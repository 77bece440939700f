package entities

import (
	"image/color"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
)

// NewPotEntity 创建承载配方阶段机的锅实体
// 参数:
//   - manager: EntityManager 实例
//   - recipe: 配方配置,决定投料顺序
//   - x, y: 锅的位置
//
// 返回: 创建的实体ID
func NewPotEntity(manager *ecs.EntityManager, recipe *config.RecipeConfig, x, y float64) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(e, &components.SpriteComponent{
		Width:  140,
		Height: 90,
		Color:  color.RGBA{R: 200, G: 160, B: 120, A: 255},
		Label:  recipe.Name,
	})

	manager.AddComponent(e, &components.HoverHighlightComponent{Intensity: 1.0})

	manager.AddComponent(e, &components.StageComponent{
		RecipeName: recipe.Name,
		Required:   recipe.IngredientIDs(),
	})

	return e
}

// NewOvenEntity 创建烤箱实体
// 配方完成后由 BakeSystem 点火,倒计时结束出炉成品菜
func NewOvenEntity(manager *ecs.EntityManager, recipe *config.RecipeConfig, x, y float64) ecs.EntityID {
	e := manager.CreateEntity()

	manager.AddComponent(e, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(e, &components.SpriteComponent{
		Width:  110,
		Height: 110,
		Color:  color.RGBA{R: 90, G: 90, B: 100, A: 255},
		Label:  "烤箱",
	})

	manager.AddComponent(e, &components.OvenComponent{
		BakeDuration: recipe.BakeDuration,
		DishName:     recipe.DishName,
	})

	return e
}
