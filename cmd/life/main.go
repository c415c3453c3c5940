//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeview/internal/app"
	"lifeview/pkg/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sc, err := cfg.Session()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	sess, err := session.New(sc)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	if cfg.SeedOnStart {
		sess.Apply(session.Seed{})
	}
	log.Printf("lifeview: %dx%d grid, seed %d, %d live cells", sc.Grid.Size, sc.Grid.Size, sc.Seed, sess.Grid().Population())

	game := app.New(sess, cfg)

	ebiten.SetWindowTitle("lifeview — Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
