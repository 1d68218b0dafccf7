package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is driven by the game loop once per tick and once per frame.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}
