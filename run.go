package arbor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is an ebiten.Game that drives a Scene. OnUpdate and OnDraw, when set,
// run after the scene's own Update and before its debug overlay.
type Game struct {
	Scene    *Scene
	OnUpdate func() error
	OnDraw   func(screen *ebiten.Image)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.Scene.Update()
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
	if g.Scene.debug {
		g.Scene.Draw(screen)
	}
}

// Layout implements ebiten.Game. The scene's root always covers the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Scene.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and runs scene until the window closes.
func Run(scene *Scene, cfg RunConfig) error {
	return RunGame(&Game{Scene: scene}, cfg)
}

// RunGame is Run for a Game with its own update and draw hooks. When
// cfg.ConfigPath is set, that file is loaded and applied to the scene first.
func RunGame(g *Game, cfg RunConfig) error {
	scene := g.Scene
	if cfg.ConfigPath != "" {
		c, err := LoadConfigFile(cfg.ConfigPath)
		if err != nil {
			return err
		}
		scene.SetConfig(c)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		scene.SetViewport(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	scene.logger.Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
