package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/kitchen/pkg/components"
	"github.com/gonewx/kitchen/pkg/config"
	"github.com/gonewx/kitchen/pkg/ecs"
	"github.com/gonewx/kitchen/pkg/entities"
	"github.com/gonewx/kitchen/pkg/game"
	"github.com/gonewx/kitchen/pkg/systems"
)

// MusicMenu 主菜单背景音乐ID
const MusicMenu = "MUSIC_MENU"

// MainMenuScene 主菜单场景
//
// 提供进入集市/厨房的入口和进度重置；如果存在上一局的
// 幸运转盘结果，显示在标题下方
type MainMenuScene struct {
	ctx *Context

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem

	// musicButton, soundButton 音频开关按钮（文字随设置刷新）
	musicButton ecs.EntityID
	soundButton ecs.EntityID

	// lastSelection 上一局的转盘结果标签，空表示无
	lastSelection string
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(ctx *Context) *MainMenuScene {
	s := &MainMenuScene{
		ctx:           ctx,
		entityManager: ecs.NewEntityManager(),
	}
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.init()
	return s
}

func (s *MainMenuScene) init() {
	cx := float64(config.GameWindowWidth) / 2

	entities.NewButtonEntity(s.entityManager, "去集市收集", cx, 280, func() {
		s.ctx.SceneManager.LoadScene(config.SceneMarket)
	})
	entities.NewButtonEntity(s.entityManager, "直接进厨房", cx, 350, func() {
		s.ctx.SceneManager.LoadScene(config.SceneKitchen)
	})
	entities.NewButtonEntity(s.entityManager, "重置收集进度", cx, 420, func() {
		s.resetProgress()
	})
	s.musicButton = entities.NewButtonEntity(s.entityManager, "", cx-110, 490, func() {
		s.toggleMusic()
	})
	s.soundButton = entities.NewButtonEntity(s.entityManager, "", cx+110, 490, func() {
		s.toggleSound()
	})
	s.refreshAudioButtons()

	if _, label, ok := s.ctx.ProgressStore.Selection(); ok {
		s.lastSelection = label
	}

	if s.ctx.AudioManager != nil {
		s.ctx.AudioManager.PlayMusic(MusicMenu)
	}
}

// resetProgress 清空所有类别的收集计数
func (s *MainMenuScene) resetProgress() {
	names := make([]string, len(s.ctx.CollectionConfig.Categories))
	for i, g := range s.ctx.CollectionConfig.Categories {
		names[i] = g.Name
	}
	if err := s.ctx.ProgressStore.Reset(names); err != nil {
		log.Printf("[MainMenu] Warning: progress reset incomplete: %v", err)
	}
}

// toggleMusic 切换背景音乐开关并持久化设置
func (s *MainMenuScene) toggleMusic() {
	sm := s.ctx.SettingsManager
	if sm == nil {
		return
	}
	enabled := !sm.GetSettings().MusicEnabled
	sm.SetMusicEnabled(enabled)
	if err := sm.Save(); err != nil {
		log.Printf("[MainMenu] Warning: failed to save settings: %v", err)
	}

	if s.ctx.AudioManager != nil {
		if enabled {
			s.ctx.AudioManager.PlayMusic(MusicMenu)
		} else {
			s.ctx.AudioManager.StopMusic()
		}
		s.ctx.AudioManager.ApplyVolumes()
	}
	s.refreshAudioButtons()
}

// toggleSound 切换音效开关并持久化设置
func (s *MainMenuScene) toggleSound() {
	sm := s.ctx.SettingsManager
	if sm == nil {
		return
	}
	sm.SetSoundEnabled(!sm.GetSettings().SoundEnabled)
	if err := sm.Save(); err != nil {
		log.Printf("[MainMenu] Warning: failed to save settings: %v", err)
	}
	s.refreshAudioButtons()
}

// refreshAudioButtons 按当前设置刷新开关按钮文字
func (s *MainMenuScene) refreshAudioButtons() {
	music, sound := true, true
	if sm := s.ctx.SettingsManager; sm != nil {
		music = sm.GetSettings().MusicEnabled
		sound = sm.GetSettings().SoundEnabled
	}
	s.setButtonText(s.musicButton, fmt.Sprintf("音乐: %s", onOff(music)))
	s.setButtonText(s.soundButton, fmt.Sprintf("音效: %s", onOff(sound)))
}

func (s *MainMenuScene) setButtonText(id ecs.EntityID, text string) {
	if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
		btn.Text = text
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "开"
	}
	return "关"
}

// Update 更新主菜单
func (s *MainMenuScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制主菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 46, B: 60, A: 255})

	ebitenutil.DebugPrintAt(screen, config.GameTitle, config.GameWindowWidth/2-60, 160)
	if s.lastSelection != "" {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("上局好运: %s", s.lastSelection),
			config.GameWindowWidth/2-70, 200)
	}

	s.buttonSystem.Draw(screen)
	s.drawProgressSummary(screen)
}

// drawProgressSummary 在左下角显示各类别的收集进度
func (s *MainMenuScene) drawProgressSummary(screen *ebiten.Image) {
	y := config.GameWindowHeight - 20*len(s.ctx.CollectionConfig.Categories) - 12
	for _, g := range s.ctx.CollectionConfig.Categories {
		line := fmt.Sprintf("%s: %d/%d", g.Name, s.ctx.ProgressStore.Count(g.Name), g.Threshold)
		ebitenutil.DebugPrintAt(screen, line, 16, y)
		y += 20
	}
}

var _ game.Scene = (*MainMenuScene)(nil)
