package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCollectionConfig(t *testing.T) {
	cfg := DefaultCollectionConfig()

	if len(cfg.Categories) == 0 {
		t.Fatal("默认配置应至少有一个类别")
	}
	if cfg.PollInterval <= 0 {
		t.Error("轮询间隔应为正数")
	}
	if cfg.NextScene == "" {
		t.Error("应配置目标场景")
	}
	for _, c := range cfg.Categories {
		if c.Threshold <= 0 {
			t.Errorf("类别 %q 的门槛应为正数", c.Name)
		}
	}
}

func TestLoadCollectionConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collection.yaml")

	content := `categories:
  - name: apple
    threshold: 3
  - name: pear
    threshold: 1
pollInterval: 0.25
nextScene: kitchen
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入测试配置失败: %v", err)
	}

	cfg, err := LoadCollectionConfig(path)
	if err != nil {
		t.Fatalf("LoadCollectionConfig 失败: %v", err)
	}

	if len(cfg.Categories) != 2 {
		t.Fatalf("Categories: got %d, want 2", len(cfg.Categories))
	}
	// 顺序必须保持：归属匹配按首次命中
	if cfg.Categories[0].Name != "apple" || cfg.Categories[1].Name != "pear" {
		t.Error("类别顺序应与文件一致")
	}
	if cfg.PollInterval != 0.25 {
		t.Errorf("PollInterval: got %v, want 0.25", cfg.PollInterval)
	}
}

func TestLoadCollectionConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collection.yaml")

	// 缺省 pollInterval 与 nextScene 时回落默认值
	content := `categories:
  - name: apple
    threshold: 1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入测试配置失败: %v", err)
	}

	cfg, err := LoadCollectionConfig(path)
	if err != nil {
		t.Fatalf("LoadCollectionConfig 失败: %v", err)
	}
	if cfg.PollInterval <= 0 {
		t.Error("缺省轮询间隔应回落为默认值")
	}
	if cfg.NextScene != SceneKitchen {
		t.Errorf("缺省目标场景应为 %q, got %q", SceneKitchen, cfg.NextScene)
	}
}
