package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CategoryGoal 一个收集类别及其达标门槛
type CategoryGoal struct {
	// Name 类别名称（归属匹配时转小写做子串比较）
	// 空名称会使进度门永远无法达标，这是刻意的防御策略
	Name string `yaml:"name"`
	// Threshold 达标所需数量
	Threshold int `yaml:"threshold"`
}

// CollectionConfig 收集场景配置
//
// 类别顺序有意义：物品归属按顺序做首次命中匹配，
// 当类别名互为子串时（如"茄"与"番茄"）顺序决定归属
type CollectionConfig struct {
	// Categories 类别列表（有序）
	Categories []CategoryGoal `yaml:"categories"`

	// PollInterval 进度门轮询间隔（秒）
	PollInterval float64 `yaml:"pollInterval"`

	// NextScene 全部达标后切换到的场景ID
	NextScene string `yaml:"nextScene"`
}

// DefaultCollectionConfig 返回默认收集配置
func DefaultCollectionConfig() *CollectionConfig {
	return &CollectionConfig{
		Categories: []CategoryGoal{
			{Name: "番茄", Threshold: 2},
			{Name: "奶酪", Threshold: 1},
			{Name: "面团", Threshold: 1},
			{Name: "罗勒", Threshold: 1},
		},
		PollInterval: 0.5,
		NextScene:    SceneKitchen,
	}
}

// LoadCollectionConfig 从 yaml 文件加载收集配置
//
// 参数：
//   - path: 配置文件路径（如 "assets/config/collection.yaml"）
//
// 返回：
//   - *CollectionConfig: 收集配置
//   - error: 读取或解析失败时返回错误
func LoadCollectionConfig(path string) (*CollectionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection config: %w", err)
	}

	var cfg CollectionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse collection config: %w", err)
	}

	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("collection config has no categories")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultCollectionConfig().PollInterval
	}
	if cfg.NextScene == "" {
		cfg.NextScene = SceneKitchen
	}

	return &cfg, nil
}
