package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RecipeStage 配方中的一个阶段
type RecipeStage struct {
	// IngredientID 该阶段要求的食材ID（区分大小写，精确匹配）
	IngredientID string `yaml:"ingredientId"`
	// DisplayName 食材显示名称
	DisplayName string `yaml:"displayName"`
}

// RecipeConfig 配方配置
//
// Stages 的顺序就是投料顺序：只有投入当前阶段要求的食材才会推进，
// 投错食材不消耗、不推进
type RecipeConfig struct {
	// Name 配方名称
	Name string `yaml:"name"`
	// Stages 按顺序排列的阶段列表
	Stages []RecipeStage `yaml:"stages"`
	// DishName 完成后出炉的菜品名称
	DishName string `yaml:"dishName"`
	// BakeDuration 烤箱烘烤时长（秒）
	BakeDuration float64 `yaml:"bakeDuration"`
	// DishLifetime 出炉菜品的展示时长（秒），到期自动消失
	DishLifetime float64 `yaml:"dishLifetime"`
}

// DefaultRecipeConfig 返回默认配方（玛格丽特披萨）
func DefaultRecipeConfig() *RecipeConfig {
	return &RecipeConfig{
		Name: "玛格丽特披萨",
		Stages: []RecipeStage{
			{IngredientID: "dough", DisplayName: "面团"},
			{IngredientID: "tomato", DisplayName: "番茄"},
			{IngredientID: "cheese", DisplayName: "奶酪"},
			{IngredientID: "basil", DisplayName: "罗勒"},
		},
		DishName:     "披萨",
		BakeDuration: 3.0,
		DishLifetime: 6.0,
	}
}

// LoadRecipeConfig 从 yaml 文件加载配方配置
//
// 文件不存在或解析失败时返回错误，调用方可降级使用默认配方
//
// 参数：
//   - path: 配置文件路径（如 "assets/config/recipe.yaml"）
//
// 返回：
//   - *RecipeConfig: 配方配置
//   - error: 读取或解析失败时返回错误
func LoadRecipeConfig(path string) (*RecipeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe config: %w", err)
	}

	var cfg RecipeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse recipe config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验配方配置的合法性
func (c *RecipeConfig) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("recipe %q has no stages", c.Name)
	}
	for i, s := range c.Stages {
		if s.IngredientID == "" {
			return fmt.Errorf("recipe %q stage %d has empty ingredient id", c.Name, i)
		}
	}
	if c.BakeDuration <= 0 {
		return fmt.Errorf("recipe %q has non-positive bake duration", c.Name)
	}
	return nil
}

// IngredientIDs 返回配方按顺序要求的食材ID列表（副本）
func (c *RecipeConfig) IngredientIDs() []string {
	ids := make([]string, len(c.Stages))
	for i, s := range c.Stages {
		ids[i] = s.IngredientID
	}
	return ids
}
