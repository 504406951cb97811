// Package atlas maps the global tile ids of a loaded map to the pixel
// rectangle each tile occupies in its tileset image.
package atlas

import (
	"errors"
	"image"

	tmxparser "github.com/JiepengTan/tmx_parser"
	"github.com/JiepengTan/tmx_parser/geometry"
)

var ErrTileCount = errors.New("atlas: map tile count did not match actual tile count")

// Tile locates one gid. Tileset indexes Map.Tilesets and is -1 for the
// empty tile and for gids no tileset covers.
type Tile struct {
	Tileset int
	Rect    geometry.Rect
}

type Atlas struct {
	tilesets []tmxparser.Tileset
	tiles    []Tile
	images   []image.Image
}

// New lays out every tileset of m on its image grid. Entry 0 is the empty
// tile, sized to the map's tiles.
func New(m *tmxparser.Map) (*Atlas, error) {
	n := m.TotalTiles
	if n < 1 {
		n = 1
	}
	a := &Atlas{
		tilesets: m.Tilesets,
		tiles:    make([]Tile, n),
		images:   make([]image.Image, len(m.Tilesets)),
	}
	for i := range a.tiles {
		a.tiles[i].Tileset = -1
	}
	a.tiles[0].Rect = geometry.NewRect(0, 0, float64(m.TileWidth), float64(m.TileHeight))

	for i, ts := range m.Tilesets {
		if ts.Columns == 0 {
			continue
		}
		id := int(ts.FirstGID)
		for t := 0; t < ts.TileCount; t++ {
			if id >= len(a.tiles) {
				return nil, ErrTileCount
			}
			x, y := t%ts.Columns, t/ts.Columns
			a.tiles[id] = Tile{
				Tileset: i,
				Rect: geometry.NewRect(
					float64(ts.Margin+(ts.TileWidth+ts.Spacing)*x),
					float64(ts.Margin+(ts.TileHeight+ts.Spacing)*y),
					float64(ts.TileWidth),
					float64(ts.TileHeight),
				),
			}
			id++
		}
	}
	return a, nil
}

// Len is the number of entries, including the empty tile.
func (a *Atlas) Len() int { return len(a.tiles) }

// Tile looks up gid, ignoring its flip flags.
func (a *Atlas) Tile(gid uint32) (Tile, bool) {
	id := tmxparser.TileID(gid)
	if int64(id) >= int64(len(a.tiles)) {
		return Tile{Tileset: -1}, false
	}
	t := a.tiles[id]
	return t, t.Tileset >= 0
}
