package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/kitchen/pkg/app"
	"github.com/gonewx/kitchen/pkg/config"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	scene := flag.String("scene", "", "启动场景 (menu/market/kitchen)，默认主菜单")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Scene:   *scene,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
