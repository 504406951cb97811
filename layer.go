package tmxparser

import "encoding/xml"

// parseAttr applies one of the attributes shared by all layer kinds. It
// reports false for attributes it does not know so the caller can try its
// own.
func (d *LayerData) parseAttr(a xml.Attr) (bool, error) {
	var err error
	switch a.Name.Local {
	case "id":
		d.ID, err = getValue[int](a)
	case "name":
		d.Name, err = getString(a)
	case "visible":
		d.Visible, err = getFlag(a)
	case "locked":
		d.Locked, err = getFlag(a)
	case "opacity":
		d.Opacity, err = getValue[float64](a)
	case "color":
		d.Colour, err = getColour(a)
	case "tintcolor":
		d.Tint, err = getColour(a)
	case "draworder":
		var s string
		s, err = getString(a)
		d.IndexDrawOrder = s == "index"
	case "offsetx":
		d.Offset.X, err = getValue[float64](a)
	case "offsety":
		d.Offset.Y, err = getValue[float64](a)
	case "parallaxx":
		d.Parallax.X, err = getValue[float64](a)
	case "parallaxy":
		d.Parallax.Y, err = getValue[float64](a)
	default:
		return false, nil
	}
	return true, err
}

func (p *parser) parseLayer(c *cursor, e xml.StartElement) (Layer, error) {
	l := Layer{LayerData: newLayerData(), Properties: newProperties()}
	for _, a := range e.Attr {
		ok, err := l.parseAttr(a)
		if err != nil {
			return l, err
		}
		if ok {
			continue
		}
		switch a.Name.Local {
		case "width":
			l.Width, err = getValue[int](a)
		case "height":
			l.Height, err = getValue[int](a)
		default:
			warnAttr("layer", a.Name.Local)
		}
		if err != nil {
			return l, err
		}
	}
	if c != nil {
		if err := p.walk(c, target{kind: docLayer, layer: &l}); err != nil {
			return l, err
		}
	}
	// Layers of infinite maps hold their tiles in chunks, each checked on
	// its own, and may be empty.
	if !p.infinite && len(l.Chunks) == 0 && len(l.Tiles) != l.Width*l.Height {
		return l, parseErrorf("layer %q has %d tiles, want %dx%d", l.Name, len(l.Tiles), l.Width, l.Height)
	}
	return l, nil
}

func (p *parser) layerStart(c *cursor, l *Layer, e xml.StartElement) error {
	switch e.Name.Local {
	case "data":
		d, err := newTileData(e)
		if err != nil {
			return err
		}
		if err := p.walk(c, target{kind: docTileData, data: d}); err != nil {
			return err
		}
		l.Tiles, err = d.decode()
		if err != nil {
			return err
		}
		l.Chunks = d.chunks
	case "properties":
		return p.walk(c, target{kind: docProperties, props: &l.Properties})
	default:
		return skipTag(c, docLayer, e)
	}
	return nil
}
