package tmxparser

import (
	"bytes"
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type eventKind int

const (
	evEOF eventKind = iota
	evStart
	evEmpty
	evEnd
	evText
)

type event struct {
	kind eventKind
	elem xml.StartElement
	end  string
	text []byte
}

// cursor turns the xml token stream of one file into open, self closing,
// close and text events.
type cursor struct {
	dec  *xml.Decoder
	name string
	peek xml.Token
}

func newCursor(data []byte, name string) *cursor {
	r := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(transform.Nop))
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &cursor{dec: dec, name: name}
}

func (c *cursor) token() (xml.Token, error) {
	if c.peek != nil {
		t := c.peek
		c.peek = nil
		return t, nil
	}
	t, err := c.dec.Token()
	if err != nil {
		return nil, err
	}
	return xml.CopyToken(t), nil
}

func (c *cursor) next() (event, error) {
	for {
		tok, err := c.token()
		if err == io.EOF {
			return event{kind: evEOF}, nil
		}
		if err != nil {
			return event{}, parseErrorf("%s: %v", c.name, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			// <a/> is reported as a start immediately followed by an end
			// that consumes no input.
			off := c.dec.InputOffset()
			nt, err := c.token()
			if err != nil {
				return event{}, parseErrorf("%s: %v", c.name, err)
			}
			if _, ok := nt.(xml.EndElement); ok && c.dec.InputOffset() == off {
				return event{kind: evEmpty, elem: t}, nil
			}
			c.peek = nt
			return event{kind: evStart, elem: t}, nil
		case xml.EndElement:
			return event{kind: evEnd, end: t.Name.Local}, nil
		case xml.CharData:
			return event{kind: evText, text: t}, nil
		}
	}
}

// skip discards everything up to and including the close of the element
// whose open event was returned last.
func (c *cursor) skip() error {
	for depth := 1; depth > 0; {
		ev, err := c.next()
		if err != nil {
			return err
		}
		switch ev.kind {
		case evEOF:
			return nil
		case evStart:
			depth++
		case evEnd:
			depth--
		}
	}
	return nil
}

// docKind names the document type whose handlers receive events.
type docKind int

const (
	docMap docKind = iota
	docTileset
	docTile
	docAnimation
	docLayer
	docTileData
	docChunk
	docProperties
	docImageLayer
	docObjectGroup
	docObject
	docText
)

var docNames = [...]string{
	docMap:         "map",
	docTileset:     "tileset",
	docTile:        "tile",
	docAnimation:   "animation",
	docLayer:       "layer",
	docTileData:    "data",
	docChunk:       "chunk",
	docProperties:  "properties",
	docImageLayer:  "imagelayer",
	docObjectGroup: "objectgroup",
	docObject:      "object",
	docText:        "text",
}

func (k docKind) String() string { return docNames[k] }

// sentinel is the closing tag that ends a walk. The map document runs to
// the end of the file.
func (k docKind) sentinel() string {
	if k == docMap {
		return ""
	}
	return docNames[k]
}

// target is the node under construction for a walk. Only the field
// matching kind is set.
type target struct {
	kind  docKind
	m     *Map
	ts    *Tileset
	tile  *TileInfo
	layer *Layer
	data  *tileData
	props *Properties
	img   *ImageLayer
	og    *groupBuilder
	obj   *objectBuilder
	text  *Text
}

// walk feeds events to t until its closing tag or the end of the file.
// Unknown tags are logged and their subtrees skipped, malformed xml fails.
func (p *parser) walk(c *cursor, t target) error {
	for {
		ev, err := c.next()
		if err != nil {
			return err
		}
		switch ev.kind {
		case evEOF:
			return nil
		case evStart:
			err = p.start(c, t, ev.elem)
		case evEmpty:
			err = p.empty(t, ev.elem)
		case evText:
			err = p.text(t, ev.text)
		case evEnd:
			if ev.end == t.kind.sentinel() {
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) start(c *cursor, t target, e xml.StartElement) error {
	switch t.kind {
	case docMap:
		return p.mapStart(c, t.m, e)
	case docTileset:
		return p.tilesetStart(c, t.ts, e)
	case docTile:
		return p.tileStart(c, t.tile, e)
	case docLayer:
		return p.layerStart(c, t.layer, e)
	case docTileData, docChunk:
		return p.dataStart(c, t.data, e)
	case docProperties:
		return propertiesStart(c, t.props, e)
	case docImageLayer:
		return p.imageLayerStart(c, t.img, e)
	case docObjectGroup:
		return p.groupStart(c, t.og, e)
	case docObject:
		return p.objectStart(c, t.obj, e)
	}
	return skipTag(c, t.kind, e)
}

// skipTag logs an unrecognized open tag and discards its subtree.
func skipTag(c *cursor, doc docKind, e xml.StartElement) error {
	warnTag(doc.String(), e.Name.Local)
	return c.skip()
}

func (p *parser) empty(t target, e xml.StartElement) error {
	switch t.kind {
	case docMap:
		return p.mapEmpty(t.m, e)
	case docTileset:
		return p.tilesetEmpty(t.ts, e)
	case docTile:
		return p.tileEmpty(t.tile, e)
	case docAnimation:
		return animationEmpty(t.tile, e)
	case docTileData, docChunk:
		return dataEmpty(t.data, e)
	case docProperties:
		return propertiesEmpty(t.props, e)
	case docImageLayer:
		return imageLayerEmpty(t.img, e)
	case docObjectGroup:
		return p.groupEmpty(t.og, e)
	case docObject:
		return p.objectEmpty(t.obj, e)
	}
	warnEmptyTag(t.kind.String(), e.Name.Local)
	return nil
}

func (p *parser) text(t target, data []byte) error {
	switch t.kind {
	case docTileData, docChunk:
		t.data.text.Write(data)
	case docText:
		t.text.Text += string(data)
	}
	return nil
}
