package components

import "github.com/yohamta/donburi"

// SpriteData holds the texture handle the presentation layer draws with.
type SpriteData struct {
	Texture string
}

var Sprite = donburi.NewComponentType[SpriteData]()
