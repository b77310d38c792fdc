// Package atlas loads named sprites out of a single atlas image described by
// a JSON config.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/pawnboard/internal/render"
)

// Sprite names the board asks for.
const (
	SpriteDarkSquare  = "square gray dark"
	SpriteLightSquare = "square gray light"
	SpritePawn        = "pawn"
)

// SpriteDefinition defines a single sprite within an atlas
type SpriteDefinition struct {
	Name   string `json:"name"`    // Semantic name (e.g., "square gray dark")
	AtlasX int    `json:"atlas_x"` // X position in atlas (in tiles)
	AtlasY int    `json:"atlas_y"` // Y position in atlas (in tiles)
}

// Config defines the JSON configuration for a sprite atlas
type Config struct {
	Name       string             `json:"name"`
	ImagePath  string             `json:"image_path"`  // Path to the atlas image, relative to the config file
	TileWidth  int                `json:"tile_width"`  // Width of each sprite in pixels
	TileHeight int                `json:"tile_height"` // Height of each sprite in pixels
	Sprites    []SpriteDefinition `json:"tiles"`
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config *Config
	Image  render.Image
	byName map[string]*SpriteDefinition
}

// ParseConfig parses and validates an atlas config.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("invalid tile dimensions: %dx%d", c.TileWidth, c.TileHeight)
	}
	if c.ImagePath == "" {
		return fmt.Errorf("image_path is required in atlas config")
	}
	return nil
}

// Load loads a sprite atlas from a JSON configuration file. The image path in
// the config is resolved against the config's directory.
func Load(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse atlas config %s: %w", configPath, err)
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	return New(config, img)
}

// New builds an atlas around an already loaded image.
func New(config *Config, img render.Image) (*Atlas, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	byName := make(map[string]*SpriteDefinition, len(config.Sprites))
	for i := range config.Sprites {
		sprite := &config.Sprites[i]
		if sprite.Name != "" {
			byName[sprite.Name] = sprite
		}
	}

	return &Atlas{
		Config: config,
		Image:  img,
		byName: byName,
	}, nil
}

// Has reports whether a sprite with the given name exists.
func (a *Atlas) Has(name string) bool {
	_, ok := a.byName[name]
	return ok
}

// Rect returns the pixel rectangle of a sprite inside the atlas image.
func (a *Atlas) Rect(name string) (image.Rectangle, bool) {
	sprite, ok := a.byName[name]
	if !ok {
		return image.Rectangle{}, false
	}
	x := sprite.AtlasX * a.Config.TileWidth
	y := sprite.AtlasY * a.Config.TileHeight
	return image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight), true
}

// Sprite returns the sub-image for a sprite by name.
func (a *Atlas) Sprite(name string) (render.Image, error) {
	r, ok := a.Rect(name)
	if !ok {
		return nil, fmt.Errorf("sprite not found: %s", name)
	}
	if !r.In(a.Image.Bounds()) {
		return nil, fmt.Errorf("sprite %s at %v lies outside the atlas image %v", name, r, a.Image.Bounds())
	}
	return a.Image.SubImage(r), nil
}
