package model

import (
	"image/color"

	"github.com/harbdog/raycaster-go"
	"github.com/harbdog/raycaster-go/geom"
)

// DecorationTextures is the number of decoration textures at the start of the
// sprite texture set; pickup textures follow them.
const DecorationTextures = 4

type SpriteKind int

const (
	Decoration SpriteKind = iota
	Pickup
)

type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupAmmo
	PickupKey
	PickupTreasure
)

var pickupNames = map[PickupKind]string{
	PickupHealth:   "health",
	PickupAmmo:     "ammo",
	PickupKey:      "key",
	PickupTreasure: "treasure",
}

func (k PickupKind) String() string {
	if name, ok := pickupNames[k]; ok {
		return name
	}
	return "unknown"
}

// Texture returns the sprite texture index used to draw the pickup.
func (k PickupKind) Texture() int {
	return DecorationTextures + int(k)
}

type Sprite struct {
	Entity
	Kind   SpriteKind
	Pickup PickupKind
}

func NewDecoration(pos geom.Vector2, texture int) *Sprite {
	return &Sprite{
		Entity: Entity{
			Position: pos,
			Scale:    1.0,
			Anchor:   raycaster.AnchorBottom,
			Texture:  texture,
			Active:   true,
			MapColor: color.RGBA{160, 160, 160, 255},
		},
		Kind: Decoration,
	}
}

func NewPickup(pos geom.Vector2, kind PickupKind) *Sprite {
	return &Sprite{
		Entity: Entity{
			Position: pos,
			Scale:    0.5,
			Anchor:   raycaster.AnchorBottom,
			Texture:  kind.Texture(),
			Active:   true,
			MapColor: color.RGBA{255, 215, 0, 255},
		},
		Kind:   Pickup,
		Pickup: kind,
	}
}

// Collectible reports whether the sprite can still be picked up.
func (s *Sprite) Collectible() bool {
	return s.Kind == Pickup && s.Active
}
