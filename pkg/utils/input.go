// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	// 检查触摸按下
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标按下
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}

	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// ============================================================================
// 拖拽状态管理器 - 用于食材拖拽投放的交互
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态。每个场景持有自己的实例，
// 由场景在每帧 Update 开头调用一次 Update()
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	return &DragManager{
		info: DragInfo{
			State:   DragStateNone,
			TouchID: -1,
		},
	}
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	currentTouchIDs := ebiten.AppendTouchIDs(nil)

	switch dm.info.State {
	case DragStateNone:
		dm.checkDragStart()

	case DragStateStarted:
		// 从开始状态转换到拖拽中
		dm.info.State = DragStateDragging
		dm.updateCurrentPosition(currentTouchIDs)

	case DragStateDragging:
		if dm.checkDragEnd(currentTouchIDs) {
			dm.info.State = DragStateEnded
		} else {
			dm.updateCurrentPosition(currentTouchIDs)
		}

	case DragStateEnded:
		// 结束状态只持续一帧，下一帧重置
		dm.Reset()
	}
}

// checkDragStart 检测拖拽开始
func (dm *DragManager) checkDragStart() {
	// 优先检测触摸输入
	justPressedTouchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(justPressedTouchIDs) > 0 {
		touchID := justPressedTouchIDs[0]
		x, y := ebiten.TouchPosition(touchID)
		dm.info = DragInfo{
			State:        DragStateStarted,
			StartX:       x,
			StartY:       y,
			CurrentX:     x,
			CurrentY:     y,
			TouchID:      touchID,
			IsTouchInput: true,
		}
		return
	}

	// 检测鼠标输入
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dm.info = DragInfo{
			State:        DragStateStarted,
			StartX:       x,
			StartY:       y,
			CurrentX:     x,
			CurrentY:     y,
			TouchID:      -1,
			IsTouchInput: false,
		}
	}
}

// checkDragEnd 检测拖拽结束
func (dm *DragManager) checkDragEnd(currentTouchIDs []ebiten.TouchID) bool {
	if dm.info.IsTouchInput {
		// 检测触摸释放
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				return false // 触摸仍然活跃
			}
		}
		return true
	}

	// 检测鼠标释放
	return !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// updateCurrentPosition 更新当前位置
func (dm *DragManager) updateCurrentPosition(currentTouchIDs []ebiten.TouchID) {
	if dm.info.IsTouchInput {
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				dm.info.CurrentX, dm.info.CurrentY = ebiten.TouchPosition(id)
				return
			}
		}
	} else {
		dm.info.CurrentX, dm.info.CurrentY = ebiten.CursorPosition()
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}
