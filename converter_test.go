package tmxparser

import "testing"

func twoTilesets() *Map {
	return &Map{
		Tilesets: []Tileset{
			{FirstGID: 1, Name: "a", TileCount: 4},
			{FirstGID: 5, Name: "b", TileCount: 4, Tiles: []TileInfo{{ID: 1, Type: "door"}}},
		},
	}
}

func TestTilesetFor(t *testing.T) {
	m := twoTilesets()
	tests := []struct {
		gid   uint32
		name  string
		index uint32
		ok    bool
	}{
		{gid: 0},
		{gid: 1, name: "a", index: 0, ok: true},
		{gid: 4, name: "a", index: 3, ok: true},
		{gid: 5, name: "b", index: 0, ok: true},
		{gid: 6, name: "b", index: 1, ok: true},
		{gid: 6 | FlipHorizontal | FlipDiagonal, name: "b", index: 1, ok: true},
		{gid: 9},
	}
	for _, tt := range tests {
		ts, index, ok := m.TilesetFor(tt.gid)
		if ok != tt.ok {
			t.Errorf("TilesetFor(%#x) ok = %t, want %t", tt.gid, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if ts.Name != tt.name || index != tt.index {
			t.Errorf("TilesetFor(%#x) = %q/%d, want %q/%d", tt.gid, ts.Name, index, tt.name, tt.index)
		}
	}

	ts, index, _ := m.TilesetFor(6)
	if info := ts.Tile(index); info == nil || info.Type != "door" {
		t.Errorf("tile info = %+v", info)
	}
	if ts.Tile(3) != nil {
		t.Error("tile 3 should have no metadata")
	}
}

func TestTilesetForUnorderedTilesets(t *testing.T) {
	m := &Map{Tilesets: []Tileset{
		{FirstGID: 10, Name: "late", TileCount: 5},
		{FirstGID: 1, Name: "early", TileCount: 9},
	}}
	if ts, index, ok := m.TilesetFor(12); !ok || ts.Name != "late" || index != 2 {
		t.Errorf("TilesetFor(12) = %v, %d, %t", ts, index, ok)
	}
	if ts, _, ok := m.TilesetFor(3); !ok || ts.Name != "early" {
		t.Errorf("TilesetFor(3) = %v, %t", ts, ok)
	}
}

func TestFlips(t *testing.T) {
	gid := uint32(7) | FlipHorizontal | FlipVertical
	if TileID(gid) != 7 {
		t.Errorf("TileID = %d", TileID(gid))
	}
	h, v, d := Flips(gid)
	if !h || !v || d {
		t.Errorf("Flips = %t %t %t", h, v, d)
	}
	if h, v, d := Flips(7); h || v || d {
		t.Error("plain gid reports flips")
	}
}

func TestLookups(t *testing.T) {
	m := &Map{
		Layers:       []Layer{{LayerData: LayerData{Name: "ground"}, Width: 2, Height: 2, Tiles: []uint32{1, 2, 3, 4}}},
		ObjectGroups: []ObjectGroup{{LayerData: LayerData{Name: "spawns"}}},
		Tilesets:     []Tileset{{Name: "terrain"}},
	}
	l := m.LayerByName("ground")
	if l == nil {
		t.Fatal("LayerByName(ground) = nil")
	}
	if got := l.TileAt(1, 1); got != 4 {
		t.Errorf("TileAt(1,1) = %d", got)
	}
	if got := l.TileAt(0, 1); got != 3 {
		t.Errorf("TileAt(0,1) = %d", got)
	}
	if got := l.TileAt(2, 0); got != 0 {
		t.Errorf("TileAt(2,0) = %d", got)
	}
	if got := l.TileAt(-1, 0); got != 0 {
		t.Errorf("TileAt(-1,0) = %d", got)
	}
	if m.LayerByName("sky") != nil || m.ObjectGroupByName("spawns") == nil || m.TilesetByName("terrain") == nil {
		t.Error("name lookups failed")
	}
}
