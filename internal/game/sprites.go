package game

import (
	"fmt"
	"log"

	"chosenoffset.com/pawnboard/internal/atlas"
	"chosenoffset.com/pawnboard/internal/config"
	"chosenoffset.com/pawnboard/internal/placeholders"
	"chosenoffset.com/pawnboard/internal/render"
)

// Sprites are the drawable images of the scene.
type Sprites struct {
	Dark  render.Image
	Light render.Image
	Pawn  render.Image
}

// SpritesFromAtlas resolves the configured sprite names in an atlas.
func SpritesFromAtlas(a *atlas.Atlas, assets config.AssetsConfig) (*Sprites, error) {
	var s Sprites
	var err error
	if s.Dark, err = a.Sprite(assets.DarkSquare); err != nil {
		return nil, err
	}
	if s.Light, err = a.Sprite(assets.LightSquare); err != nil {
		return nil, err
	}
	if s.Pawn, err = a.Sprite(assets.Pawn); err != nil {
		return nil, err
	}
	return &s, nil
}

// PlaceholderSprites uploads the generated placeholder atlas.
func PlaceholderSprites(r render.Renderer) (*Sprites, error) {
	img, cfg := placeholders.Build()
	a, err := atlas.New(cfg, r.NewImageFromImage(img))
	if err != nil {
		return nil, fmt.Errorf("failed to build placeholder atlas: %w", err)
	}
	return SpritesFromAtlas(a, config.AssetsConfig{
		DarkSquare:  atlas.SpriteDarkSquare,
		LightSquare: atlas.SpriteLightSquare,
		Pawn:        atlas.SpritePawn,
	})
}

// LoadSprites loads the configured atlas, falling back to placeholders when it
// cannot be used.
func LoadSprites(cfg *config.Config, loader render.ResourceLoader, r render.Renderer) (*Sprites, error) {
	if cfg.Assets.AtlasPath != "" {
		a, err := atlas.Load(cfg.Assets.AtlasPath, loader)
		if err == nil {
			var s *Sprites
			if s, err = SpritesFromAtlas(a, cfg.Assets); err == nil {
				return s, nil
			}
		}
		log.Printf("Warning: %v, using placeholder sprites", err)
	}
	return PlaceholderSprites(r)
}
