package tmxparser

import (
	"encoding/xml"
	"fmt"
	"path"
	"path/filepath"
	"sync/atomic"
)

const defaultMaxIncludeDepth = 8

// maxIncludeDepth is read once per parse. Zero selects the default.
var maxIncludeDepth atomic.Int32

func includeDepth() int {
	if d := int(maxIncludeDepth.Load()); d > 0 {
		return d
	}
	return defaultMaxIncludeDepth
}

// parser holds the state of one Parse call. Every external reference is
// resolved against base, which is fixed when the map file is opened.
type parser struct {
	base     string
	read     func(name string) ([]byte, error)
	join     func(elem ...string) string
	includes []string
	maxDepth int
	infinite bool
}

func newParser(name string, read func(string) ([]byte, error), slashPaths bool) *parser {
	p := &parser{
		read:     read,
		join:     filepath.Join,
		maxDepth: includeDepth(),
	}
	if slashPaths {
		p.join = path.Join
		p.base = path.Dir(name)
	} else {
		p.base = filepath.Dir(name)
	}
	if p.base == "." {
		p.base = ""
	}
	return p
}

// resolve returns ref relative to the directory of the map file.
func (p *parser) resolve(ref string) string {
	if p.base == "" {
		return p.join(ref)
	}
	return p.join(p.base, ref)
}

// include reads name and hands a cursor over its contents to fn. Files
// that are already being read further up, and chains deeper than the
// configured limit, are rejected.
func (p *parser) include(name string, fn func(c *cursor) error) error {
	for _, inc := range p.includes {
		if inc == name {
			return fmt.Errorf("%w: %s", ErrIncludeCycle, name)
		}
	}
	if len(p.includes) > p.maxDepth {
		return fmt.Errorf("%w: %s is nested %d deep", ErrIncludeDepth, name, len(p.includes))
	}
	data, err := p.read(name)
	if err != nil {
		return &FileReadError{Path: name, Err: err}
	}
	Logger().Debug("including file", "path", name, "depth", len(p.includes))

	p.includes = append(p.includes, name)
	defer func() { p.includes = p.includes[:len(p.includes)-1] }()
	return fn(newCursor(data, name))
}

func blankMap(base string) *Map {
	return &Map{
		TotalTiles: 1,
		Properties: newProperties(),
		Path:       base,
	}
}

func (p *parser) parseMap(name string) (*Map, error) {
	m := blankMap(p.base)
	err := p.include(name, func(c *cursor) error {
		return p.walk(c, target{kind: docMap, m: m})
	})
	if err != nil {
		return nil, err
	}
	for _, og := range m.ObjectGroups {
		m.Texts = append(m.Texts, og.Texts...)
	}
	return m, nil
}

func (p *parser) mapStart(c *cursor, m *Map, e xml.StartElement) error {
	switch e.Name.Local {
	case "map":
		return p.mapAttrs(m, e)
	case "layer":
		l, err := p.parseLayer(c, e)
		if err != nil {
			return err
		}
		m.Layers = append(m.Layers, l)
	case "objectgroup":
		og, err := p.parseObjectGroup(c, e)
		if err != nil {
			return err
		}
		m.ObjectGroups = append(m.ObjectGroups, og)
	case "imagelayer":
		il, err := p.parseImageLayer(c, e)
		if err != nil {
			return err
		}
		m.ImageLayers = append(m.ImageLayers, il)
	case "tileset":
		ts, err := p.parseTileset(c, e)
		if err != nil {
			return err
		}
		m.addTileset(ts)
	case "properties":
		return p.walk(c, target{kind: docProperties, props: &m.Properties})
	case "group":
		// group layers are flattened, their children arrive here
	default:
		return skipTag(c, docMap, e)
	}
	return nil
}

func (p *parser) mapEmpty(m *Map, e xml.StartElement) error {
	switch e.Name.Local {
	case "map":
		return p.mapAttrs(m, e)
	case "tileset":
		ts, err := p.parseTileset(nil, e)
		if err != nil {
			return err
		}
		m.addTileset(ts)
	case "layer":
		l, err := p.parseLayer(nil, e)
		if err != nil {
			return err
		}
		m.Layers = append(m.Layers, l)
	case "objectgroup":
		og, err := p.parseObjectGroup(nil, e)
		if err != nil {
			return err
		}
		m.ObjectGroups = append(m.ObjectGroups, og)
	case "imagelayer":
		il, err := p.parseImageLayer(nil, e)
		if err != nil {
			return err
		}
		m.ImageLayers = append(m.ImageLayers, il)
	default:
		warnEmptyTag(docMap.String(), e.Name.Local)
	}
	return nil
}

func (m *Map) addTileset(ts Tileset) {
	m.Tilesets = append(m.Tilesets, ts)
	m.TotalTiles += ts.TileCount
}

// mapAttrs applies the <map> attributes and remembers whether the map is
// infinite, which changes how its layers are checked.
func (p *parser) mapAttrs(m *Map, e xml.StartElement) error {
	if err := parseMapAttrs(m, e); err != nil {
		return err
	}
	p.infinite = m.Infinite
	return nil
}

func parseMapAttrs(m *Map, e xml.StartElement) error {
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "width":
			m.Width, err = getValue[int](a)
		case "height":
			m.Height, err = getValue[int](a)
		case "tilewidth":
			m.TileWidth, err = getValue[int](a)
		case "tileheight":
			m.TileHeight, err = getValue[int](a)
		case "infinite":
			m.Infinite, err = getFlag(a)
		case "orientation":
			m.Orientation, err = parseOrientation(a.Value)
		case "renderorder":
			m.Metadata.RenderOrder, err = parseRenderOrder(a.Value)
		case "version":
			m.Metadata.Version, err = getString(a)
		case "tiledversion":
			m.Metadata.TiledVersion, err = getString(a)
		case "nextlayerid":
			m.Metadata.NextLayerID, err = getValue[int](a)
		case "nextobjectid":
			m.Metadata.NextObjectID, err = getValue[int](a)
		case "backgroundcolor":
			m.Background, err = getColour(a)
		default:
			warnAttr("map", a.Name.Local)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseOrientation(s string) (Orientation, error) {
	switch s {
	case "orthogonal":
		return Orthogonal, nil
	case "isometric":
		return Isometric, nil
	case "staggered":
		return IsometricStaggered, nil
	case "hexagonal":
		return HexagonalStaggered, nil
	}
	return Orthogonal, unsupportedf("map orientation %q", s)
}

func parseRenderOrder(s string) (RenderOrder, error) {
	switch s {
	case "right-down":
		return RightDown, nil
	case "right-up":
		return RightUp, nil
	case "left-down":
		return LeftDown, nil
	case "left-up":
		return LeftUp, nil
	}
	return RightDown, unsupportedf("render order %q", s)
}
