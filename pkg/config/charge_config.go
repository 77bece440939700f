package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChargeConfig 蓄力弹射配置
type ChargeConfig struct {
	// MinImpulse 最小冲量（像素/秒），刚按下立即松开时的值
	MinImpulse float64 `yaml:"minImpulse"`
	// MaxImpulse 最大冲量（像素/秒），蓄满时的值
	MaxImpulse float64 `yaml:"maxImpulse"`
	// ChargeDuration 蓄满所需时长（秒）
	ChargeDuration float64 `yaml:"chargeDuration"`
	// Curve 蓄力值的增长曲线名（linear/out-cubic/in-cubic/out-quad/in-quad）
	Curve string `yaml:"curve"`
	// AngleDegrees 弹射方向角度（0 = 向右，90 = 向上）
	AngleDegrees float64 `yaml:"angleDegrees"`
	// OncePerTarget 每个目标是否最多弹射一次
	OncePerTarget bool `yaml:"oncePerTarget"`
	// DespawnDelay 弹射后目标延迟销毁时间（秒），0 表示不销毁
	DespawnDelay float64 `yaml:"despawnDelay"`
}

// DefaultChargeConfig 返回默认蓄力配置
func DefaultChargeConfig() *ChargeConfig {
	return &ChargeConfig{
		MinImpulse:     120,
		MaxImpulse:     520,
		ChargeDuration: 1.2,
		Curve:          "linear",
		AngleDegrees:   60,
		OncePerTarget:  true,
		DespawnDelay:   2.5,
	}
}

// LoadChargeConfig 从 yaml 文件加载蓄力配置
func LoadChargeConfig(path string) (*ChargeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read charge config: %w", err)
	}

	var cfg ChargeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse charge config: %w", err)
	}

	if cfg.MaxImpulse < cfg.MinImpulse {
		return nil, fmt.Errorf("charge config: maxImpulse (%v) < minImpulse (%v)", cfg.MaxImpulse, cfg.MinImpulse)
	}
	if cfg.ChargeDuration <= 0 {
		return nil, fmt.Errorf("charge config: non-positive chargeDuration")
	}

	return &cfg, nil
}
