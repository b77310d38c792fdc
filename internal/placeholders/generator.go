// Package placeholders draws the board sprites procedurally so the game can
// run without hand-made art.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/pawnboard/internal/atlas"
)

// TileSize is the standard size for placeholder sprites
const TileSize = 32

// Output file names written by GenerateAndSave
const (
	ImageFile  = "board.png"
	ConfigFile = "board.json"
)

// ColorPalette defines colors for the board sprites
var ColorPalette = struct {
	SquareDark  color.RGBA
	SquareLight color.RGBA
	Pawn        color.RGBA
	Outline     color.RGBA
}{
	SquareDark:  color.RGBA{95, 99, 104, 255},   // Dark gray
	SquareLight: color.RGBA{178, 182, 187, 255}, // Light gray
	Pawn:        color.RGBA{240, 236, 226, 255}, // Ivory
	Outline:     color.RGBA{30, 30, 34, 255},    // Near black
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateSquare creates a board square with a one pixel bevel
func CreateSquare(col color.RGBA) *image.RGBA {
	img := CreateSolidTile(col)
	edge := Darken(col, 0.85)
	for i := 0; i < TileSize; i++ {
		img.Set(i, TileSize-1, edge)
		img.Set(TileSize-1, i, edge)
	}
	return img
}

// CreatePawn creates a pawn silhouette: a round head over a flared body on a base
func CreatePawn(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	inside := func(x, y int) bool {
		cx := TileSize / 2
		// Head
		hx, hy, r := x-cx, y-9, 5
		if hx*hx+hy*hy <= r*r {
			return true
		}
		// Body widens from the neck down to the base
		if y >= 14 && y < 25 {
			half := 2 + (y-14)*5/10
			return x >= cx-half && x < cx+half
		}
		// Base
		if y >= 25 && y < 29 {
			return x >= cx-10 && x < cx+10
		}
		return false
	}

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			if !inside(x, y) {
				continue
			}
			edge := !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1)
			if edge {
				img.Set(x, y, outlineColor)
			} else {
				img.Set(x, y, fillColor)
			}
		}
	}

	return img
}

// CreateAtlas creates a sprite atlas from multiple tiles
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	tileCount := len(tiles)
	rows := (tileCount + columns - 1) / columns

	atlasImg := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		destRect := image.Rect(x, y, x+TileSize, y+TileSize)
		draw.Draw(atlasImg, destRect, tile, image.Point{}, draw.Src)
	}

	return atlasImg
}

// Build draws the board sprites into one atlas image and returns it with its config.
func Build() (*image.RGBA, *atlas.Config) {
	sprites := []struct {
		name string
		img  *image.RGBA
	}{
		{atlas.SpriteDarkSquare, CreateSquare(ColorPalette.SquareDark)},
		{atlas.SpriteLightSquare, CreateSquare(ColorPalette.SquareLight)},
		{atlas.SpritePawn, CreatePawn(ColorPalette.Pawn, ColorPalette.Outline)},
	}

	tiles := make([]*image.RGBA, len(sprites))
	config := &atlas.Config{
		Name:       "board",
		ImagePath:  ImageFile,
		TileWidth:  TileSize,
		TileHeight: TileSize,
	}
	for i, s := range sprites {
		tiles[i] = s.img
		config.Sprites = append(config.Sprites, atlas.SpriteDefinition{Name: s.name, AtlasX: i})
	}

	return CreateAtlas(tiles, len(tiles)), config
}

// GenerateAndSave writes board.png and board.json into dir.
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	img, config := Build()
	if err := SavePNG(img, filepath.Join(dir, ImageFile)); err != nil {
		return fmt.Errorf("failed to save atlas image: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode atlas config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to save atlas config: %w", err)
	}
	return nil
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
