package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/survivor/assets/manifest"
	"github.com/automoto/survivor/config"
	"github.com/automoto/survivor/fonts"
	"github.com/automoto/survivor/scenes"
	"github.com/automoto/survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(res *scenes.Resources) *Game {
	if err := fonts.LoadDefaults(config.HUD.FontSize, 32); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewSurvivalScene(g, res)
	} else {
		g.scene = scenes.NewMenuScene(g, res)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.C.AssetRoot, "assets", config.C.AssetRoot, "directory holding image/, sound/ and "+manifest.FileName)
	flag.Int64Var(&config.C.Seed, "seed", config.C.Seed, "random seed for every run (0 picks a new one)")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start a run immediately")
	flag.Parse()

	fsys := os.DirFS(config.C.AssetRoot)
	m, err := manifest.Load(fsys, manifest.FileName)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.ConfigureAudio(fsys, m.Sounds)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewResources(fsys, m, config.C.Seed))); err != nil {
		log.Fatal(err)
	}
}
