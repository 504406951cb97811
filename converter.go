package tmxparser

// The top three bits of a gid in layer data and tile objects mark how the
// tile is flipped.
const (
	FlipHorizontal uint32 = 0x80000000
	FlipVertical   uint32 = 0x40000000
	FlipDiagonal   uint32 = 0x20000000

	flipMask = FlipHorizontal | FlipVertical | FlipDiagonal
)

// TileID strips the flip flags from gid.
func TileID(gid uint32) uint32 {
	return gid &^ flipMask
}

// Flips reports the flip flags set on gid.
func Flips(gid uint32) (horizontal, vertical, diagonal bool) {
	return gid&FlipHorizontal != 0, gid&FlipVertical != 0, gid&FlipDiagonal != 0
}

// TilesetFor finds the tileset owning gid: the one with the greatest
// FirstGID not above it. index is the 0 based position of the tile in that
// tileset, so the tileset's first tile is index 0 and gid FirstGID+1 is
// index 1. Gid 0 is the empty tile and has no tileset.
func (m *Map) TilesetFor(gid uint32) (ts *Tileset, index uint32, ok bool) {
	id := TileID(gid)
	if id == 0 {
		return nil, 0, false
	}
	for i := range m.Tilesets {
		t := &m.Tilesets[i]
		if t.FirstGID <= id && (ts == nil || t.FirstGID > ts.FirstGID) {
			ts = t
		}
	}
	if ts == nil {
		return nil, 0, false
	}
	index = id - ts.FirstGID
	if ts.TileCount > 0 && int(index) >= ts.TileCount {
		return nil, 0, false
	}
	return ts, index, true
}

// TileAt returns the gid at column x, row y, or 0 outside the layer.
func (l *Layer) TileAt(x, y int) uint32 {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	i := y*l.Width + x
	if i >= len(l.Tiles) {
		return 0
	}
	return l.Tiles[i]
}

// LayerByName returns the first tile layer called name, or nil.
func (m *Map) LayerByName(name string) *Layer {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i]
		}
	}
	return nil
}

// ObjectGroupByName returns the first object group called name, or nil.
func (m *Map) ObjectGroupByName(name string) *ObjectGroup {
	for i := range m.ObjectGroups {
		if m.ObjectGroups[i].Name == name {
			return &m.ObjectGroups[i]
		}
	}
	return nil
}

// TilesetByName returns the first tileset called name, or nil.
func (m *Map) TilesetByName(name string) *Tileset {
	for i := range m.Tilesets {
		if m.Tilesets[i].Name == name {
			return &m.Tilesets[i]
		}
	}
	return nil
}

// Tile returns the metadata of the tile at local index id, or nil when the
// tileset has none for it.
func (ts *Tileset) Tile(id uint32) *TileInfo {
	for i := range ts.Tiles {
		if ts.Tiles[i].ID == id {
			return &ts.Tiles[i]
		}
	}
	return nil
}
