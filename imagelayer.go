package tmxparser

import "encoding/xml"

func (p *parser) parseImageLayer(c *cursor, e xml.StartElement) (ImageLayer, error) {
	il := ImageLayer{LayerData: newLayerData(), Properties: newProperties()}
	for _, a := range e.Attr {
		ok, err := il.parseAttr(a)
		if err != nil {
			return il, err
		}
		if ok {
			continue
		}
		switch a.Name.Local {
		case "repeatx":
			il.RepeatX, err = getFlag(a)
		case "repeaty":
			il.RepeatY, err = getFlag(a)
		default:
			warnAttr("imagelayer", a.Name.Local)
		}
		if err != nil {
			return il, err
		}
	}
	if c == nil {
		return il, nil
	}
	return il, p.walk(c, target{kind: docImageLayer, img: &il})
}

func (p *parser) imageLayerStart(c *cursor, il *ImageLayer, e xml.StartElement) error {
	if e.Name.Local == "properties" {
		return p.walk(c, target{kind: docProperties, props: &il.Properties})
	}
	return skipTag(c, docImageLayer, e)
}

// imageLayerEmpty keeps the image source exactly as written in the map.
func imageLayerEmpty(il *ImageLayer, e xml.StartElement) error {
	if e.Name.Local != "image" {
		warnEmptyTag(docImageLayer.String(), e.Name.Local)
		return nil
	}
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "source":
			il.ImagePath, err = getString(a)
		case "width":
			il.Width, err = getValue[int](a)
		case "height":
			il.Height, err = getValue[int](a)
		default:
			warnAttr("image", a.Name.Local)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
