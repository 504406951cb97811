package tmxparser

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/JiepengTan/tmx_parser/geometry"
)

// objectBuilder is an object whose shape is not settled yet. A template
// and the object's own children may each set a payload.
type objectBuilder struct {
	obj     Object
	poly    *Poly
	text    *Text
	ellipse bool
	point   bool
}

type groupBuilder struct {
	group   *ObjectGroup
	pending []objectBuilder
}

func (p *parser) parseObjectGroup(c *cursor, e xml.StartElement) (ObjectGroup, error) {
	og := ObjectGroup{LayerData: newLayerData(), Properties: newProperties()}
	for _, a := range e.Attr {
		ok, err := og.parseAttr(a)
		if err != nil {
			return og, err
		}
		if !ok {
			warnAttr("objectgroup", a.Name.Local)
		}
	}
	if c == nil {
		return og, nil
	}
	b := &groupBuilder{group: &og}
	if err := p.walk(c, target{kind: docObjectGroup, og: b}); err != nil {
		return og, err
	}
	b.partition()
	return og, nil
}

// partition moves every pending object into exactly one shape slice,
// keeping document order. A polygon wins over text, text over an
// ellipse, an ellipse over a point.
func (b *groupBuilder) partition() {
	og := b.group
	for _, o := range b.pending {
		switch {
		case o.poly != nil:
			o.obj.Shape = ShapePolyline
			if o.poly.Closed {
				o.obj.Shape = ShapePolygon
			}
			poly := *o.poly
			poly.Object = o.obj
			og.Polys = append(og.Polys, poly)
		case o.text != nil:
			o.obj.Shape = ShapeText
			text := *o.text
			text.Object = o.obj
			og.Texts = append(og.Texts, text)
		case o.ellipse:
			o.obj.Shape = ShapeEllipse
			og.Ellipses = append(og.Ellipses, o.obj)
		case o.point:
			o.obj.Shape = ShapePoint
			og.Points = append(og.Points, o.obj)
		default:
			o.obj.Shape = ShapeRect
			og.Objects = append(og.Objects, o.obj)
		}
	}
	b.pending = nil
}

func (p *parser) groupStart(c *cursor, b *groupBuilder, e xml.StartElement) error {
	switch e.Name.Local {
	case "properties":
		return p.walk(c, target{kind: docProperties, props: &b.group.Properties})
	case "object":
		o, err := p.parseObject(c, e)
		if err != nil {
			return err
		}
		b.pending = append(b.pending, o)
	default:
		return skipTag(c, docObjectGroup, e)
	}
	return nil
}

func (p *parser) groupEmpty(b *groupBuilder, e xml.StartElement) error {
	if e.Name.Local != "object" {
		warnEmptyTag(docObjectGroup.String(), e.Name.Local)
		return nil
	}
	o, err := p.parseObject(nil, e)
	if err != nil {
		return err
	}
	b.pending = append(b.pending, o)
	return nil
}

func (p *parser) parseObject(c *cursor, e xml.StartElement) (objectBuilder, error) {
	b := objectBuilder{obj: Object{Visible: true, Properties: newProperties()}}
	if err := p.applyObject(&b, e); err != nil {
		return b, err
	}
	if c == nil {
		return b, nil
	}
	return b, p.walk(c, target{kind: docObject, obj: &b})
}

// applyObject loads the object's template, if any, before its own
// attributes so that those override the template.
func (p *parser) applyObject(b *objectBuilder, e xml.StartElement) error {
	for _, a := range e.Attr {
		if a.Name.Local != "template" {
			continue
		}
		tpl, err := getString(a)
		if err != nil {
			return err
		}
		err = p.include(p.resolve(tpl), func(tc *cursor) error {
			return p.walk(tc, target{kind: docObject, obj: b})
		})
		if err != nil {
			return err
		}
		b.obj.Template = tpl
	}
	for _, a := range e.Attr {
		if a.Name.Local == "template" {
			continue
		}
		if err := objectAttr(&b.obj, a); err != nil {
			return err
		}
	}
	return nil
}

func objectAttr(o *Object, a xml.Attr) error {
	var err error
	switch a.Name.Local {
	case "x":
		o.Rect.X, err = getValue[float64](a)
	case "y":
		o.Rect.Y, err = getValue[float64](a)
	case "width":
		o.Rect.W, err = getValue[float64](a)
	case "height":
		o.Rect.H, err = getValue[float64](a)
	case "id":
		o.ID, err = getValue[int](a)
	case "name":
		o.Name, err = getString(a)
	case "type", "class":
		o.Type, err = getString(a)
	case "visible":
		var s string
		s, err = getString(a)
		o.Visible = s == "1"
	case "rotation":
		o.Rotation, err = getValue[float64](a)
	case "gid":
		o.GID, err = getValue[uint32](a)
	default:
		warnAttr("object", a.Name.Local)
	}
	return err
}

func (p *parser) objectStart(c *cursor, b *objectBuilder, e xml.StartElement) error {
	switch e.Name.Local {
	case "template":
		// wrapper of a template file, its object follows
	case "object":
		return p.applyObject(b, e)
	case "properties":
		return p.walk(c, target{kind: docProperties, props: &b.obj.Properties})
	case "text":
		t, err := p.parseText(c, e)
		if err != nil {
			return err
		}
		b.text = &t
	default:
		return skipTag(c, docObject, e)
	}
	return nil
}

func (p *parser) objectEmpty(b *objectBuilder, e xml.StartElement) error {
	switch e.Name.Local {
	case "object":
		return p.applyObject(b, e)
	case "polygon", "polyline":
		poly, err := parsePoly(e, e.Name.Local == "polygon")
		if err != nil {
			return err
		}
		b.poly = &poly
	case "ellipse":
		b.ellipse = true
	case "point":
		b.point = true
	case "text":
		t, err := p.parseText(nil, e)
		if err != nil {
			return err
		}
		b.text = &t
	default:
		warnEmptyTag(docObject.String(), e.Name.Local)
	}
	return nil
}

func parsePoly(e xml.StartElement, closed bool) (Poly, error) {
	poly := Poly{Closed: closed}
	for _, a := range e.Attr {
		if a.Name.Local != "points" {
			warnAttr(e.Name.Local, a.Name.Local)
			continue
		}
		s, err := getString(a)
		if err != nil {
			return poly, err
		}
		if poly.Points, err = parsePoints(s); err != nil {
			return poly, err
		}
	}
	return poly, nil
}

// parsePoints reads "x,y x,y ..." pairs.
func parsePoints(s string) ([]geometry.Vec2, error) {
	var points []geometry.Vec2
	for _, pair := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingPoint, pair)
		}
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			return nil, parseErrorf("failed to parse point %q to floats", pair)
		}
		points = append(points, geometry.NewVec2(x, y))
	}
	return points, nil
}

func (p *parser) parseText(c *cursor, e xml.StartElement) (Text, error) {
	t := Text{
		FontFamily: "sans-serif",
		PixelSize:  16,
		Colour:     Black,
	}
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "fontfamily":
			t.FontFamily, err = getString(a)
		case "pixelsize":
			t.PixelSize, err = getValue[int](a)
		case "wrap":
			t.Wrap, err = getFlag(a)
		case "bold":
			t.Bold, err = getFlag(a)
		case "italic":
			t.Italic, err = getFlag(a)
		case "halign":
			t.HorizontalAlign, err = parseHAlign(a.Value)
		case "valign":
			t.VerticalAlign, err = parseVAlign(a.Value)
		case "color":
			t.Colour, err = getColour(a)
		default:
			warnAttr("text", a.Name.Local)
		}
		if err != nil {
			return t, err
		}
	}
	if c == nil {
		return t, nil
	}
	return t, p.walk(c, target{kind: docText, text: &t})
}

func parseHAlign(s string) (HorizontalAlign, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, parseErrorf("text alignment %q not recognized", s)
}

func parseVAlign(s string) (VerticalAlign, error) {
	switch s {
	case "top":
		return AlignTop, nil
	case "center":
		return AlignMiddle, nil
	case "bottom":
		return AlignBottom, nil
	}
	return AlignTop, parseErrorf("text alignment %q not recognized", s)
}
