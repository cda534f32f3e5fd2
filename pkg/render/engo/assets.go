// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"

	"github.com/arcade-forge/go-skystrike/pkg/entity"
)

// AssetManager builds and caches the drawables for every entity kind.
// There are no image files; all sprites are generated from pixel
// patterns and tinted with the archetype palette.
type AssetManager struct {
	enemySprites map[entity.Archetype]common.Drawable

	playerSprite       common.Drawable
	playerBulletSprite common.Drawable
	enemyBulletSprite  common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		enemySprites: make(map[entity.Archetype]common.Drawable),
	}
}

// LoadAssets generates all sprites.
func (am *AssetManager) LoadAssets() error {
	am.loadPlayerSprite()
	am.loadEnemySprites()
	am.loadBulletSprites()
	return nil
}

// loadPlayerSprite creates the player ship: a right-pointing wedge.
func (am *AssetManager) loadPlayerSprite() {
	am.playerSprite = am.createSprite(8, 8, [][]int{
		{1, 1, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 1, 0, 0, 0, 0},
		{1, 1, 0, 0, 0, 0, 0, 0},
	})
}

// loadEnemySprites builds one shape per archetype. Shapes are drawn
// in white and tinted at render time with the archetype color.
func (am *AssetManager) loadEnemySprites() {
	square := [][]int{
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1},
	}
	diamond := [][]int{
		{0, 0, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 0, 0},
	}
	ring := [][]int{
		{0, 1, 1, 1, 1, 0},
		{1, 1, 0, 0, 1, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 0, 0, 1, 1},
		{0, 1, 1, 1, 1, 0},
	}

	am.enemySprites[entity.Small] = am.createSprite(6, 6, square)
	am.enemySprites[entity.Medium] = am.createSprite(6, 6, square)
	am.enemySprites[entity.Large] = am.createSprite(6, 6, square)
	am.enemySprites[entity.Boss] = am.createSprite(6, 6, diamond)
	am.enemySprites[entity.Homing] = am.createSprite(6, 6, diamond)
	am.enemySprites[entity.Circle] = am.createSprite(6, 6, ring)
	am.enemySprites[entity.Pentagon] = am.createSprite(6, 6, diamond)
}

// loadBulletSprites builds the two bullet dots.
func (am *AssetManager) loadBulletSprites() {
	am.playerBulletSprite = am.createSprite(4, 2, [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	am.enemyBulletSprite = am.createSprite(4, 4, [][]int{
		{0, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 1, 1, 0},
	})
}

// createSprite creates a drawable from a 2D pixel pattern.
func (am *AssetManager) createSprite(width, height int, pattern [][]int) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// GetEnemySprite returns the sprite for an enemy archetype.
func (am *AssetManager) GetEnemySprite(archetype entity.Archetype) common.Drawable {
	if sprite, exists := am.enemySprites[archetype]; exists {
		return sprite
	}
	return am.enemySprites[entity.Small]
}

// GetPlayerSprite returns the player ship sprite.
func (am *AssetManager) GetPlayerSprite() common.Drawable {
	return am.playerSprite
}

// GetBulletSprite returns the bullet sprite for the given owner side.
func (am *AssetManager) GetBulletSprite(fromPlayer bool) common.Drawable {
	if fromPlayer {
		return am.playerBulletSprite
	}
	return am.enemyBulletSprite
}

// ArchetypeColor parses the archetype's palette entry into a render
// tint. Malformed entries fall back to white.
func ArchetypeColor(archetype entity.Archetype) color.Color {
	return parseHexColor(archetype.GetStats().Color)
}

// parseHexColor parses a "#rrggbb" string.
func parseHexColor(s string) color.Color {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{255, 255, 255, 255}
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[1+2*i])
		lo, ok2 := hexDigit(s[2+2*i])
		if !ok1 || !ok2 {
			return color.RGBA{255, 255, 255, 255}
		}
		rgb[i] = hi<<4 | lo
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
