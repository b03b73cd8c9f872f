package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteShape names a procedurally drawn image.
type SpriteShape string

const (
	ShapeCircle SpriteShape = "circle"
	ShapeRect   SpriteShape = "rect"
	ShapeOrb    SpriteShape = "orb"
	ShapeImage  SpriteShape = "image"
)

// Sprite is drawn centred on the entity's transform. Image is created by the
// render system from Shape and the pixel size the first time it is drawn.
type Sprite struct {
	Image     *ebiten.Image
	Shape     SpriteShape
	ImageName string
	Width     float64
	Height    float64
	// Tint multiplies the image colour; nil draws it unchanged.
	Tint  color.Color
	Alpha float64
	// Pulse scales the sprite around its centre; 0 means 1.
	Pulse  float64
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
