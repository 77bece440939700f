package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"gopkg.in/yaml.v3"
)

// ResourceConfig 资源清单
// 把资源ID映射到文件路径，游戏代码只使用ID
type ResourceConfig struct {
	// Sounds 音效ID -> 文件路径
	Sounds map[string]string `yaml:"sounds"`
	// Music 背景音乐ID -> 文件路径
	Music map[string]string `yaml:"music"`
}

// ResourceManager 资源管理器
// 负责音频资源的加载、解码和缓存
//
// 所有加载方法把整个文件读入内存后解码，避免持有文件句柄
type ResourceManager struct {
	audioCache   map[string]*audio.Player // 已加载的播放器缓存: path -> Player
	audioContext *audio.Context           // 全局音频上下文，可为 nil（无声模式）
	config       *ResourceConfig          // 资源清单
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - audioContext: 音频上下文，可为 nil（无声降级模式，所有加载返回错误）
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		config:       &ResourceConfig{Sounds: map[string]string{}, Music: map[string]string{}},
	}
}

// LoadResourceConfig 从 yaml 文件加载资源清单
//
// 参数：
//   - path: 清单文件路径（如 "assets/config/resources.yaml"）
func (rm *ResourceManager) LoadResourceConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resource config: %w", err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config: %w", err)
	}

	if cfg.Sounds == nil {
		cfg.Sounds = map[string]string{}
	}
	if cfg.Music == nil {
		cfg.Music = map[string]string{}
	}
	rm.config = &cfg
	return nil
}

// SoundPath 按ID查找音效文件路径，未登记返回空字符串
func (rm *ResourceManager) SoundPath(id string) string {
	return rm.config.Sounds[id]
}

// MusicPath 按ID查找音乐文件路径，未登记返回空字符串
func (rm *ResourceManager) MusicPath(id string) string {
	return rm.config.Music[id]
}

// decodeAudio 把内存中的音频数据解码为可寻址流
func decodeAudio(path string, data []byte) (io.ReadSeeker, int64, error) {
	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// LoadAudio 加载背景音乐并缓存
// 音频流会被包装成无限循环，适合背景音乐
//
// 参数：
//   - path: 音频文件路径
//
// 返回：
//   - *audio.Player: 可播放的播放器（未开始播放）
//   - error: 打开、解码或创建播放器失败时返回错误
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context")
	}

	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, length, err := decodeAudio(path, audioData)
	if err != nil {
		return nil, err
	}

	// 背景音乐循环播放
	loopStream := audio.NewInfiniteLoop(stream, length)

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect 加载单次播放的音效并缓存
// 与 LoadAudio 不同，不做循环包装
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context")
	}

	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	stream, _, err := decodeAudio(path, audioData)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}
