package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/game"
	"github.com/gonewx/kitchen/pkg/utils"
)

// 投料音效ID
const (
	SoundDropAccepted = "SOUND_DROP_OK"
	SoundDropRejected = "SOUND_DROP_BAD"
)

// DragSystem 食材拖拽与配方推进系统
//
// 把指针拖拽翻译成配方阶段机的输入：
//   - 拖起食材，松手时如果落在锅上，用食材ID与配方当前阶段
//     要求的ID做区分大小写的精确比较
//   - 匹配：食材被消耗（实体销毁），阶段索引+1，锅的外观切换
//     到下一阶段；最后一个阶段只标记完成，不再切换
//   - 不匹配：食材回弹到原位，状态不变，只记录一次拒绝
type DragSystem struct {
	entityManager *ecs.EntityManager
	audioManager  *game.AudioManager // 可为 nil
	dragManager   *utils.DragManager

	// draggingEntity 当前被拖拽的食材实体，0 表示无
	draggingEntity ecs.EntityID

	// onRecipeComplete 配方完成时调用一次（通常用于点火烤箱）
	onRecipeComplete func()
}

// NewDragSystem 创建拖拽系统
//
// 参数：
//   - em: 实体管理器
//   - am: 音频管理器，可为 nil
//   - dm: 拖拽管理器（由场景持有并注入）
//   - onRecipeComplete: 配方完成回调，可为 nil
func NewDragSystem(em *ecs.EntityManager, am *game.AudioManager, dm *utils.DragManager, onRecipeComplete func()) *DragSystem {
	return &DragSystem{
		entityManager:    em,
		audioManager:     am,
		dragManager:      dm,
		onRecipeComplete: onRecipeComplete,
	}
}

// Update 处理本帧的拖拽输入
func (s *DragSystem) Update(deltaTime float64) {
	s.dragManager.Update()
	info := s.dragManager.GetInfo()

	switch {
	case s.dragManager.JustStarted():
		s.pickUp(float64(info.CurrentX), float64(info.CurrentY))

	case s.dragManager.IsDragging():
		s.follow(float64(info.CurrentX), float64(info.CurrentY))

	case s.dragManager.JustEnded():
		if s.draggingEntity != 0 {
			s.TryDrop(s.draggingEntity, float64(info.CurrentX), float64(info.CurrentY))
			s.draggingEntity = 0
		}
	}
}

// pickUp 在指针位置查找可拖拽食材并拖起
func (s *DragSystem) pickUp(x, y float64) {
	entities := ecs.GetEntitiesWith3[*components.PositionComponent, *components.DraggableComponent, *components.IngredientComponent](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if !pointInRect(x, y, pos.X, pos.Y, sprite.Width, sprite.Height) {
			continue
		}

		drag.IsDragging = true
		drag.OffsetX = x - pos.X
		drag.OffsetY = y - pos.Y
		drag.HomeX = pos.X
		drag.HomeY = pos.Y
		s.draggingEntity = id
		return
	}
}

// follow 拖拽中的食材跟随指针
func (s *DragSystem) follow(x, y float64) {
	if s.draggingEntity == 0 {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.draggingEntity)
	if !ok {
		s.draggingEntity = 0
		return
	}
	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, s.draggingEntity)
	pos.X = x - drag.OffsetX
	pos.Y = y - drag.OffsetY
}

// TryDrop 尝试把食材投放到 (x, y) 处
//
// 投放点不在锅上、配方已完成或食材不符合当前阶段要求时，
// 食材回弹到原位且阶段状态不变。
//
// 返回：
//   - bool: 食材是否被接受（消耗并推进阶段）
func (s *DragSystem) TryDrop(ingredientID ecs.EntityID, x, y float64) bool {
	ing, ok := ecs.GetComponent[*components.IngredientComponent](s.entityManager, ingredientID)
	if !ok {
		log.Printf("[Drag] Warning: dropped entity %d is not an ingredient", ingredientID)
		return false
	}

	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, ingredientID)
	if drag != nil {
		drag.IsDragging = false
	}

	potID, stage := s.findPotAt(x, y)
	if stage == nil {
		s.snapBack(ingredientID)
		return false
	}

	if stage.Completed {
		// 配方已完成，不再接受投放
		s.reject(ingredientID, stage, ing.ID)
		return false
	}

	expected := stage.Required[stage.Index]
	if ing.ID != expected {
		// 区分大小写的精确匹配失败：食材不消耗，状态不变
		s.reject(ingredientID, stage, ing.ID)
		return false
	}

	// 接受：消耗食材，推进阶段
	s.entityManager.DestroyEntity(ingredientID)
	stage.Index++
	log.Printf("[Drag] Ingredient %q accepted, stage %d/%d", ing.ID, stage.Index, len(stage.Required))

	if stage.Index >= len(stage.Required) {
		// 最后一个阶段：只标记完成，不再切换外观
		stage.Completed = true
		log.Printf("[Drag] Recipe %q completed", stage.RecipeName)
		if s.onRecipeComplete != nil {
			s.onRecipeComplete()
		}
	} else {
		s.advanceStageVisual(potID, stage)
	}

	if s.audioManager != nil {
		s.audioManager.PlaySound(SoundDropAccepted)
	}
	return true
}

// reject 拒绝投放：回弹食材，记录拒绝，播放提示音
func (s *DragSystem) reject(ingredientID ecs.EntityID, stage *components.StageComponent, droppedID string) {
	stage.Rejections++
	log.Printf("[Drag] Ingredient %q rejected (stage %d wants %q)",
		droppedID, stage.Index, s.expectedID(stage))
	s.snapBack(ingredientID)
	if s.audioManager != nil {
		s.audioManager.PlaySound(SoundDropRejected)
	}
}

// expectedID 返回当前阶段要求的食材ID（已完成时返回空）
func (s *DragSystem) expectedID(stage *components.StageComponent) string {
	if stage.Index < len(stage.Required) {
		return stage.Required[stage.Index]
	}
	return ""
}

// snapBack 把食材弹回拖拽前的原位
func (s *DragSystem) snapBack(id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos.X = drag.HomeX
	pos.Y = drag.HomeY
}

// findPotAt 查找 (x, y) 处的锅实体
func (s *DragSystem) findPotAt(x, y float64) (ecs.EntityID, *components.StageComponent) {
	pots := ecs.GetEntitiesWith2[*components.StageComponent, *components.PositionComponent](s.entityManager)

	for _, id := range pots {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if pointInRect(x, y, pos.X, pos.Y, sprite.Width, sprite.Height) {
			stage, _ := ecs.GetComponent[*components.StageComponent](s.entityManager, id)
			return id, stage
		}
	}
	return 0, nil
}

// advanceStageVisual 把锅的外观切换到下一阶段
// 阶段状态（列表与索引）保留在同一个组件里随之转移
func (s *DragSystem) advanceStageVisual(potID ecs.EntityID, stage *components.StageComponent) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, potID)
	if !ok {
		return
	}
	sprite.Color = stageColor(stage.Index, len(stage.Required))
	sprite.Label = fmt.Sprintf("%s %d/%d", stage.RecipeName, stage.Index, len(stage.Required))
}

// stageColor 按阶段进度从浅到深插值锅的颜色
func stageColor(index, total int) color.RGBA {
	if total <= 0 {
		total = 1
	}
	t := utils.Clamp01(float64(index) / float64(total))
	return color.RGBA{
		R: uint8(utils.Lerp(200, 140, t)),
		G: uint8(utils.Lerp(160, 70, t)),
		B: uint8(utils.Lerp(120, 30, t)),
		A: 255,
	}
}

// pointInRect 点是否落在中心对齐的矩形内
func pointInRect(x, y, cx, cy, w, h float64) bool {
	return x >= cx-w/2 && x <= cx+w/2 && y >= cy-h/2 && y <= cy+h/2
}
