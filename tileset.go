package tmxparser

import "encoding/xml"

// parseTileset handles a <tileset> tag of a map. With a source attribute
// the referenced tsx file is parsed in place and firstgid is kept from
// the map. c is nil for a self closing tag.
func (p *parser) parseTileset(c *cursor, e xml.StartElement) (Tileset, error) {
	ts := Tileset{Properties: newProperties()}
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "firstgid":
			ts.FirstGID, err = getValue[uint32](a)
		case "source":
			var src string
			if src, err = getString(a); err != nil {
				return ts, err
			}
			err = p.include(p.resolve(src), func(tc *cursor) error {
				return p.walk(tc, target{kind: docTileset, ts: &ts})
			})
		default:
			err = tilesetAttr(&ts, a)
		}
		if err != nil {
			return ts, err
		}
	}
	if c == nil {
		return ts, nil
	}
	return ts, p.walk(c, target{kind: docTileset, ts: &ts})
}

func tilesetAttr(ts *Tileset, a xml.Attr) error {
	var err error
	switch a.Name.Local {
	case "name":
		ts.Name, err = getString(a)
	case "tilewidth":
		ts.TileWidth, err = getValue[int](a)
	case "tileheight":
		ts.TileHeight, err = getValue[int](a)
	case "spacing":
		ts.Spacing, err = getValue[int](a)
	case "margin":
		ts.Margin, err = getValue[int](a)
	case "tilecount":
		ts.TileCount, err = getValue[int](a)
	case "columns":
		ts.Columns, err = getValue[int](a)
	case "version":
		ts.Version, err = getString(a)
	case "tiledversion":
		ts.TiledVersion, err = getString(a)
	default:
		warnAttr("tileset", a.Name.Local)
	}
	return err
}

func (p *parser) tilesetStart(c *cursor, ts *Tileset, e xml.StartElement) error {
	switch e.Name.Local {
	case "tileset":
		for _, a := range e.Attr {
			if err := tilesetAttr(ts, a); err != nil {
				return err
			}
		}
	case "properties":
		return p.walk(c, target{kind: docProperties, props: &ts.Properties})
	case "tile":
		tile, err := parseTileAttrs(e)
		if err != nil {
			return err
		}
		if err := p.walk(c, target{kind: docTile, tile: &tile}); err != nil {
			return err
		}
		ts.Tiles = append(ts.Tiles, tile)
	default:
		return skipTag(c, docTileset, e)
	}
	return nil
}

func (p *parser) tilesetEmpty(ts *Tileset, e xml.StartElement) error {
	switch e.Name.Local {
	case "tileset":
		for _, a := range e.Attr {
			if err := tilesetAttr(ts, a); err != nil {
				return err
			}
		}
	case "image":
		return p.tilesetImage(ts, e)
	case "tileoffset":
		for _, a := range e.Attr {
			var err error
			switch a.Name.Local {
			case "x":
				ts.TileOffset.X, err = getValue[float64](a)
			case "y":
				ts.TileOffset.Y, err = getValue[float64](a)
			default:
				warnAttr("tileoffset", a.Name.Local)
			}
			if err != nil {
				return err
			}
		}
	case "tile":
		tile, err := parseTileAttrs(e)
		if err != nil {
			return err
		}
		ts.Tiles = append(ts.Tiles, tile)
	default:
		warnEmptyTag(docTileset.String(), e.Name.Local)
	}
	return nil
}

// tilesetImage stores the image path already joined with the map
// directory so callers can open it directly.
func (p *parser) tilesetImage(ts *Tileset, e xml.StartElement) error {
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "source":
			var src string
			if src, err = getString(a); err == nil {
				ts.ImagePath = p.resolve(src)
			}
		case "width":
			ts.ImageWidth, err = getValue[int](a)
		case "height":
			ts.ImageHeight, err = getValue[int](a)
		default:
			warnAttr("image", a.Name.Local)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseTileAttrs(e xml.StartElement) (TileInfo, error) {
	tile := TileInfo{Properties: newProperties()}
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "id":
			tile.ID, err = getValue[uint32](a)
		case "type", "class":
			tile.Type, err = getString(a)
		default:
			warnAttr("tile", a.Name.Local)
		}
		if err != nil {
			return tile, err
		}
	}
	return tile, nil
}

func (p *parser) tileStart(c *cursor, tile *TileInfo, e xml.StartElement) error {
	switch e.Name.Local {
	case "properties":
		return p.walk(c, target{kind: docProperties, props: &tile.Properties})
	case "animation":
		return p.walk(c, target{kind: docAnimation, tile: tile})
	case "objectgroup":
		og, err := p.parseObjectGroup(c, e)
		if err != nil {
			return err
		}
		tile.Collision = &og
	default:
		return skipTag(c, docTile, e)
	}
	return nil
}

func (p *parser) tileEmpty(tile *TileInfo, e xml.StartElement) error {
	if e.Name.Local == "objectgroup" {
		og, err := p.parseObjectGroup(nil, e)
		if err != nil {
			return err
		}
		tile.Collision = &og
		return nil
	}
	warnEmptyTag(docTile.String(), e.Name.Local)
	return nil
}

func animationEmpty(tile *TileInfo, e xml.StartElement) error {
	if e.Name.Local != "frame" {
		warnEmptyTag(docAnimation.String(), e.Name.Local)
		return nil
	}
	var f Frame
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "tileid":
			f.TileID, err = getValue[uint32](a)
		case "duration":
			f.Duration, err = getValue[int](a)
		default:
			warnAttr("frame", a.Name.Local)
		}
		if err != nil {
			return err
		}
	}
	tile.Animation = append(tile.Animation, f)
	return nil
}
