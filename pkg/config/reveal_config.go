package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RevealConfig 幸运转盘配置
//
// 闪烁间隔从 StartInterval 经幂曲线（指数 CurveExponent）
// 在 SpinDuration 内过渡到 EndInterval，结束时提交最终结果
type RevealConfig struct {
	// Choices 候选项列表（非空）
	Choices []string `yaml:"choices"`

	// StartInterval 起始闪烁间隔（秒）
	StartInterval float64 `yaml:"startInterval"`
	// EndInterval 结束闪烁间隔（秒）
	EndInterval float64 `yaml:"endInterval"`
	// SpinDuration 抽取总时长（秒）
	SpinDuration float64 `yaml:"spinDuration"`
	// CurveExponent 幂曲线指数（>1 前快后慢）
	CurveExponent float64 `yaml:"curveExponent"`
	// VisibleDuration 结果展示时长（秒）
	VisibleDuration float64 `yaml:"visibleDuration"`
	// Cooldown 冷却时长（秒），与 SpinDuration 无关
	Cooldown float64 `yaml:"cooldown"`
}

// DefaultRevealConfig 返回默认转盘配置
func DefaultRevealConfig() *RevealConfig {
	return &RevealConfig{
		Choices:         []string{"双倍食材", "加速烘烤", "神秘菜谱", "再转一次", "谢谢惠顾"},
		StartInterval:   0.05,
		EndInterval:     0.35,
		SpinDuration:    2.5,
		CurveExponent:   2.0,
		VisibleDuration: 4.0,
		Cooldown:        3.0,
	}
}

// LoadRevealConfig 从 yaml 文件加载转盘配置
func LoadRevealConfig(path string) (*RevealConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reveal config: %w", err)
	}

	var cfg RevealConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse reveal config: %w", err)
	}

	if len(cfg.Choices) == 0 {
		return nil, fmt.Errorf("reveal config has no choices")
	}
	if cfg.SpinDuration <= 0 || cfg.StartInterval <= 0 || cfg.EndInterval <= 0 {
		return nil, fmt.Errorf("reveal config has non-positive timing values")
	}
	if cfg.CurveExponent <= 0 {
		cfg.CurveExponent = DefaultRevealConfig().CurveExponent
	}

	return &cfg, nil
}
