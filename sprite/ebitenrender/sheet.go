package ebitenrender

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/spritelist/sprite"
)

// TileSize is the edge length of a sheet tile in pixels.
const TileSize = 16

// TileSheet slices a sheet image into 16x16 tiles laid out
// sprite.TilesPerRow to a row. Sub-images are cached per tile.
type TileSheet struct {
	img    *ebiten.Image
	tiles  *intmap.Map[int, *ebiten.Image]
	tiles8 *intmap.Map[int, *ebiten.Image]
}

func NewTileSheet(img *ebiten.Image) *TileSheet {
	return &TileSheet{
		img:    img,
		tiles:  intmap.New[int, *ebiten.Image](256),
		tiles8: intmap.New[int, *ebiten.Image](64),
	}
}

// Len returns the number of consecutive tiles, starting at 0, on the sheet.
func (s *TileSheet) Len() int {
	b := s.img.Bounds()
	return sheetLen(b.Dx(), b.Dy())
}

// Tile returns the 16x16 image for tile n, or nil when n is not on the sheet.
func (s *TileSheet) Tile(n int) *ebiten.Image {
	if img, ok := s.tiles.Get(n); ok {
		return img
	}
	r := tileRect(n)
	if r.Empty() || !r.In(s.img.Bounds()) {
		return nil
	}
	img := s.img.SubImage(r).(*ebiten.Image)
	s.tiles.Put(n, img)
	return img
}

// Tile8 returns the top-left 8x8 quadrant of tile n.
func (s *TileSheet) Tile8(n int) *ebiten.Image {
	if img, ok := s.tiles8.Get(n); ok {
		return img
	}
	r := tile8Rect(n)
	if r.Empty() || !r.In(s.img.Bounds()) {
		return nil
	}
	img := s.img.SubImage(r).(*ebiten.Image)
	s.tiles8.Put(n, img)
	return img
}

func tileRect(n int) image.Rectangle {
	if n < 0 {
		return image.Rectangle{}
	}
	x := (n % sprite.TilesPerRow) * TileSize
	y := (n / sprite.TilesPerRow) * TileSize
	return image.Rect(x, y, x+TileSize, y+TileSize)
}

func tile8Rect(n int) image.Rectangle {
	r := tileRect(n)
	if r.Empty() {
		return r
	}
	return image.Rect(r.Min.X, r.Min.Y, r.Min.X+TileSize/2, r.Min.Y+TileSize/2)
}

// sheetLen returns how many tiles, counted from 0, resolve on a w x h sheet.
func sheetLen(w, h int) int {
	cols, rows := w/TileSize, h/TileSize
	if rows == 0 {
		return 0
	}
	if cols < sprite.TilesPerRow {
		return cols
	}
	return rows * sprite.TilesPerRow
}
