package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/railcam/config"
	"github.com/automoto/railcam/fonts"
	"github.com/automoto/railcam/scenes"
	"github.com/automoto/railcam/systems"
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

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewRailScene(g)

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
	level := flag.String("level", config.Level.Default, "Level to load (TMX file stem)")
	presetDir := flag.String("presets", "", "Directory with rails.yaml to load and watch while authoring")
	preset := flag.String("preset", config.Debug.Preset, "Preset applied when entering authoring mode")
	edit := flag.Bool("edit", false, "Start in authoring mode")
	followPos := flag.Float64("follow-pos", 0, "Camera position follow speed, saved when set")
	followRot := flag.Float64("follow-rot", 0, "Camera rotation follow speed, saved when set")
	flag.Parse()

	config.Level.Default = *level
	config.Debug.PresetDir = *presetDir
	config.Debug.Preset = *preset
	config.Debug.EditMode = *edit

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("railcam")

	// Initialize persistence and load saved tuning
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadTuning(); err == nil && saved != nil {
		systems.ApplyTuning(saved)
	}
	if *followPos > 0 || *followRot > 0 {
		if *followPos > 0 {
			config.Camera.FollowSmoothnessPosition = *followPos
		}
		if *followRot > 0 {
			config.Camera.FollowSmoothnessRotation = *followRot
		}
		if err := systems.SaveTuning(systems.CurrentTuning()); err != nil {
			log.Printf("Warning: Could not save tuning: %v", err)
		}
	}

	game := NewGame()
	err := ebiten.RunGame(game)
	if closer, ok := game.scene.(interface{ Close() error }); ok {
		if cerr := closer.Close(); cerr != nil {
			log.Printf("Warning: Could not close scene: %v", cerr)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}
