package tmxparser

import (
	"image/color"

	"github.com/JiepengTan/tmx_parser/geometry"
)

// Orientation is the map projection.
type Orientation int

const (
	Orthogonal Orientation = iota
	Isometric
	IsometricStaggered
	HexagonalStaggered
)

func (o Orientation) String() string {
	switch o {
	case Isometric:
		return "isometric"
	case IsometricStaggered:
		return "staggered"
	case HexagonalStaggered:
		return "hexagonal"
	}
	return "orthogonal"
}

func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// RenderOrder is the order in which tiles of a layer are drawn.
type RenderOrder int

const (
	RightDown RenderOrder = iota
	RightUp
	LeftDown
	LeftUp
)

func (r RenderOrder) String() string {
	switch r {
	case RightUp:
		return "right-up"
	case LeftDown:
		return "left-down"
	case LeftUp:
		return "left-up"
	}
	return "right-down"
}

func (r RenderOrder) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
)

type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// ShapeKind says which payload an object carried once its group was parsed.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapePolygon
	ShapePolyline
	ShapeText
	ShapeEllipse
	ShapePoint
)

// Colour is an 8 bit per channel, non premultiplied colour.
type Colour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	White = Colour{R: 255, G: 255, B: 255, A: 255}
	Black = Colour{A: 255}
)

// NRGBA converts c for use with image/draw.
func (c Colour) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Properties is a typed property bag. Names are unique within each map.
type Properties struct {
	Booleans map[string]bool  `json:"booleans"`
	Integers map[string]int64 `json:"integers"`
}

func newProperties() Properties {
	return Properties{
		Booleans: make(map[string]bool),
		Integers: make(map[string]int64),
	}
}

// LayerData holds the attributes every layer kind shares.
type LayerData struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Visible        bool          `json:"visible"`
	Locked         bool          `json:"locked"`
	Opacity        float64       `json:"opacity"`
	Colour         Colour        `json:"colour"`
	Tint           Colour        `json:"tint"`
	IndexDrawOrder bool          `json:"index_draw_order"`
	Parallax       geometry.Vec2 `json:"parallax"`
	Offset         geometry.Vec2 `json:"offset"`
}

func newLayerData() LayerData {
	return LayerData{
		Visible:  true,
		Opacity:  1,
		Colour:   White,
		Tint:     White,
		Parallax: geometry.NewVec2(1, 1),
	}
}

// Chunk is a rectangular piece of an infinite map layer.
type Chunk struct {
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []uint32 `json:"tiles"`
}

// Layer is a tile layer. Tiles is row major with Width*Height entries.
type Layer struct {
	LayerData
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Tiles      []uint32   `json:"tiles"`
	Chunks     []Chunk    `json:"chunks,omitempty"`
	Properties Properties `json:"properties"`
}

// Object is a single entry of an object group. Rect uses a top left origin.
type Object struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Visible    bool          `json:"visible"`
	Rect       geometry.Rect `json:"rect"`
	Rotation   float64       `json:"rotation"`
	GID        uint32        `json:"gid,omitempty"`
	Template   string        `json:"template,omitempty"`
	Shape      ShapeKind     `json:"shape"`
	Properties Properties    `json:"properties"`
}

// Poly is a polygon (Closed) or polyline. Points are relative to the
// object position.
type Poly struct {
	Object
	Points []geometry.Vec2 `json:"points"`
	Closed bool            `json:"closed"`
}

type Text struct {
	Object
	Text            string          `json:"text"`
	FontFamily      string          `json:"font_family"`
	PixelSize       int             `json:"pixel_size"`
	Wrap            bool            `json:"wrap"`
	Bold            bool            `json:"bold"`
	Italic          bool            `json:"italic"`
	HorizontalAlign HorizontalAlign `json:"horizontal_align"`
	VerticalAlign   VerticalAlign   `json:"vertical_align"`
	Colour          Colour          `json:"colour"`
}

// ObjectGroup partitions its objects by shape. Each object lands in exactly
// one slice, in document order.
type ObjectGroup struct {
	LayerData
	Objects    []Object   `json:"objects"`
	Polys      []Poly     `json:"polys"`
	Points     []Object   `json:"points"`
	Ellipses   []Object   `json:"ellipses"`
	Texts      []Text     `json:"texts"`
	Properties Properties `json:"properties"`
}

type ImageLayer struct {
	LayerData
	ImagePath  string     `json:"image_path"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	RepeatX    bool       `json:"repeat_x"`
	RepeatY    bool       `json:"repeat_y"`
	Properties Properties `json:"properties"`
}

// Frame is one step of a tile animation.
type Frame struct {
	TileID   uint32 `json:"tile_id"`
	Duration int    `json:"duration"`
}

// TileInfo carries the per tile metadata of a tileset.
type TileInfo struct {
	ID         uint32     `json:"id"`
	Type       string     `json:"type,omitempty"`
	Properties Properties `json:"properties"`
	Animation  []Frame    `json:"animation,omitempty"`

	// Collision holds the shapes drawn in the tile collision editor.
	Collision *ObjectGroup `json:"collision,omitempty"`
}

// Tileset covers the global ids [FirstGID, FirstGID+TileCount).
type Tileset struct {
	FirstGID     uint32        `json:"first_gid"`
	Name         string        `json:"name"`
	TileWidth    int           `json:"tile_width"`
	TileHeight   int           `json:"tile_height"`
	TileCount    int           `json:"tile_count"`
	Columns      int           `json:"columns"`
	Margin       int           `json:"margin"`
	Spacing      int           `json:"spacing"`
	ImagePath    string        `json:"image_path"`
	ImageWidth   int           `json:"image_width"`
	ImageHeight  int           `json:"image_height"`
	TileOffset   geometry.Vec2 `json:"tile_offset"`
	Version      string        `json:"version"`
	TiledVersion string        `json:"tiled_version"`
	Tiles        []TileInfo    `json:"tiles,omitempty"`
	Properties   Properties    `json:"properties"`
}

type Metadata struct {
	Version      string      `json:"version"`
	TiledVersion string      `json:"tiled_version"`
	RenderOrder  RenderOrder `json:"render_order"`
	NextLayerID  int         `json:"next_layer_id"`
	NextObjectID int         `json:"next_object_id"`
}

// Map is the root of a loaded TMX document. It is not modified after
// Parse returns.
type Map struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	TileWidth   int         `json:"tile_width"`
	TileHeight  int         `json:"tile_height"`
	Infinite    bool        `json:"infinite"`
	Orientation Orientation `json:"orientation"`
	Background  Colour      `json:"background"`

	// TotalTiles counts every tile of every tileset plus the empty tile 0.
	TotalTiles int `json:"total_tiles"`

	Tilesets     []Tileset     `json:"tilesets"`
	Layers       []Layer       `json:"layers"`
	ObjectGroups []ObjectGroup `json:"object_groups"`
	ImageLayers  []ImageLayer  `json:"image_layers"`
	Properties   Properties    `json:"properties"`

	// Texts lists the text objects of every object group, in layer order.
	Texts []Text `json:"texts"`

	// Path is the directory every external reference is resolved against.
	Path     string   `json:"path"`
	Metadata Metadata `json:"metadata"`
}
