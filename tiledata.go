package tmxparser

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// tileData collects the contents of a <data> or <chunk> element until it
// is closed.
type tileData struct {
	encoding    string
	compression string
	text        bytes.Buffer
	gids        []uint32
	chunks      []Chunk
}

func newTileData(e xml.StartElement) (*tileData, error) {
	d := &tileData{}
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "encoding":
			d.encoding, err = getString(a)
		case "compression":
			d.compression, err = getString(a)
		default:
			warnAttr("data", a.Name.Local)
		}
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (p *parser) dataStart(c *cursor, d *tileData, e xml.StartElement) error {
	switch e.Name.Local {
	case "chunk":
	case "tile":
		if err := dataEmpty(d, e); err != nil {
			return err
		}
		return c.skip()
	default:
		return skipTag(c, docTileData, e)
	}
	var ch Chunk
	for _, a := range e.Attr {
		var err error
		switch a.Name.Local {
		case "x":
			ch.X, err = getValue[int](a)
		case "y":
			ch.Y, err = getValue[int](a)
		case "width":
			ch.Width, err = getValue[int](a)
		case "height":
			ch.Height, err = getValue[int](a)
		default:
			warnAttr("chunk", a.Name.Local)
		}
		if err != nil {
			return err
		}
	}
	cd := &tileData{encoding: d.encoding, compression: d.compression}
	if err := p.walk(c, target{kind: docChunk, data: cd}); err != nil {
		return err
	}
	tiles, err := cd.decode()
	if err != nil {
		return err
	}
	if len(tiles) != ch.Width*ch.Height {
		return parseErrorf("chunk at %d,%d has %d tiles, want %dx%d", ch.X, ch.Y, len(tiles), ch.Width, ch.Height)
	}
	ch.Tiles = tiles
	d.chunks = append(d.chunks, ch)
	return nil
}

// dataEmpty handles the <tile gid="..."/> form used when no encoding is set.
func dataEmpty(d *tileData, e xml.StartElement) error {
	if e.Name.Local != "tile" {
		warnEmptyTag(docTileData.String(), e.Name.Local)
		return nil
	}
	var gid uint32
	for _, a := range e.Attr {
		if a.Name.Local != "gid" {
			warnAttr("tile", a.Name.Local)
			continue
		}
		var err error
		if gid, err = getValue[uint32](a); err != nil {
			return err
		}
	}
	d.gids = append(d.gids, gid)
	return nil
}

func (d *tileData) decode() ([]uint32, error) {
	switch d.encoding {
	case "":
		return d.gids, nil
	case "csv":
		return parseCSV(d.text.String())
	case "base64":
		return d.decodeBase64()
	}
	return nil, unsupportedf("tile data encoding %q", d.encoding)
}

// parseCSV reads a comma separated list of gids. Whitespace around each
// entry is ignored.
func parseCSV(s string) ([]uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	tiles := make([]uint32, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, parseErrorf("tile data could not be parsed to an integer: %q", f)
		}
		tiles = append(tiles, uint32(n))
	}
	return tiles, nil
}

func (d *tileData) decodeBase64() ([]uint32, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(d.text.String()))
	if err != nil {
		return nil, parseErrorf("tile data is not valid base64: %v", err)
	}
	data, err := decompress(raw, d.compression)
	if err != nil {
		return nil, err
	}
	if len(data)%4 != 0 {
		return nil, parseErrorf("decoded tile data has %d bytes, not a multiple of 4", len(data))
	}
	tiles := make([]uint32, len(data)/4)
	for i := range tiles {
		tiles[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return tiles, nil
}

func decompress(raw []byte, compression string) ([]byte, error) {
	var r io.ReadCloser
	var err error
	switch compression {
	case "":
		return raw, nil
	case "zlib":
		r, err = zlib.NewReader(bytes.NewReader(raw))
	case "gzip":
		r, err = gzip.NewReader(bytes.NewReader(raw))
	case "zstd":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, parseErrorf("zstd tile data: %v", err)
		}
		return out, nil
	default:
		return nil, unsupportedf("tile data compression %q", compression)
	}
	if err != nil {
		return nil, parseErrorf("%s tile data: %v", compression, err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, parseErrorf("%s tile data: %v", compression, err)
	}
	return out, nil
}
