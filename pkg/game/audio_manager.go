package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 提供便捷的播放接口
//
// 设计原则：
//   - 中心化管理：所有音频播放都通过 AudioManager
//   - 与设置联动：自动应用 SettingsManager 中的音量设置
//   - 简化调用：通过资源ID播放，无需关心路径
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（用于加载音频）
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置，可为 nil）
	currentMusic    *audio.Player    // 当前播放的背景音乐
	currentMusicID  string           // 当前播放的背景音乐ID
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_DROP_OK", "SOUND_OVEN_DING"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
	}

	path := am.resourceManager.SoundPath(soundID)
	if path == "" {
		log.Printf("[AudioManager] Warning: unknown sound id %q", soundID)
		return false
	}

	player, err := am.resourceManager.LoadSoundEffect(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to load sound %s: %v", soundID, err)
		return false
	}

	player.SetVolume(am.soundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PlayMusic 播放背景音乐
// 背景音乐使用 MusicVolume 设置控制音量，循环播放
// 同一时间只能播放一首背景音乐
//
// 参数：
//   - musicID: 音乐资源ID（如 "MUSIC_MENU", "MUSIC_KITCHEN"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.MusicEnabled {
			return false
		}
	}

	// 如果已经在播放同一首音乐，不重复播放
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	path := am.resourceManager.MusicPath(musicID)
	if path == "" {
		log.Printf("[AudioManager] Warning: unknown music id %q", musicID)
		return false
	}

	player, err := am.resourceManager.LoadAudio(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to load music %s: %v", musicID, err)
		return false
	}

	player.SetVolume(am.musicVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil && am.currentMusic.IsPlaying() {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentMusicID = ""
}

// ApplyVolumes 把当前设置中的音量应用到正在播放的音乐
// 在设置界面调整音量后调用
func (am *AudioManager) ApplyVolumes() {
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.musicVolume())
	}
}

func (am *AudioManager) musicVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().MusicVolume
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().SoundVolume
}
