package tmxparser

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

func encodeTiles(t *testing.T, tiles []uint32, compression string) string {
	t.Helper()
	raw := make([]byte, 4*len(tiles))
	for i, g := range tiles {
		binary.LittleEndian.PutUint32(raw[i*4:], g)
	}

	var buf bytes.Buffer
	var w io.WriteCloser
	switch compression {
	case "":
		buf.Write(raw)
	case "zlib":
		w = zlib.NewWriter(&buf)
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "zstd":
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			t.Fatal(err)
		}
		buf.Write(enc.EncodeAll(raw, nil))
		enc.Close()
	default:
		t.Fatalf("unknown compression %q", compression)
	}
	if w != nil {
		if _, err := w.Write(raw); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func layerDoc(w, h int, data string) string {
	return fmt.Sprintf(`<map><layer name="l" width="%d" height="%d">%s</layer></map>`, w, h, data)
}

func TestCSVData(t *testing.T) {
	m := mustParse(t, layerDoc(3, 2, "<data encoding=\"csv\">\n1, 2,3,\n 0,2147483654 ,7\n</data>"))
	want := []uint32{1, 2, 3, 0, 2147483654, 7}
	if diff := cmp.Diff(want, m.Layers[0].Tiles); diff != "" {
		t.Errorf("tiles mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVBadToken(t *testing.T) {
	_, err := parseString(t, layerDoc(2, 1, `<data encoding="csv">1,x</data>`))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
	if !bytes.Contains([]byte(err.Error()), []byte(`"x"`)) {
		t.Errorf("error %q does not name the bad token", err)
	}
}

func TestTileCountMismatch(t *testing.T) {
	_, err := parseString(t, layerDoc(2, 2, `<data encoding="csv">1,2,3</data>`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestXMLTileData(t *testing.T) {
	m := mustParse(t, layerDoc(3, 1, `<data><tile gid="5"/><tile/><tile gid="1"/></data>`))
	if diff := cmp.Diff([]uint32{5, 0, 1}, m.Layers[0].Tiles); diff != "" {
		t.Errorf("tiles mismatch (-want +got):\n%s", diff)
	}
}

func TestBase64Data(t *testing.T) {
	tiles := []uint32{1, 0, 3, 0x80000002, 4, 4}
	for _, c := range []string{"", "zlib", "gzip", "zstd"} {
		t.Run("compression="+c, func(t *testing.T) {
			data := fmt.Sprintf("<data encoding=\"base64\" compression=%q>\n   %s\n  </data>", c, encodeTiles(t, tiles, c))
			m := mustParse(t, layerDoc(3, 2, data))
			if diff := cmp.Diff(tiles, m.Layers[0].Tiles); diff != "" {
				t.Errorf("tiles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTileDataErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"encoding", `<data encoding="hex">00</data>`, ErrUnsupportedType},
		{"compression", `<data encoding="base64" compression="lz4">AAAA</data>`, ErrUnsupportedType},
		{"base64", `<data encoding="base64">@@@@</data>`, ErrParse},
		{"short", `<data encoding="base64">AAA=</data>`, ErrParse},
		{"zlib", `<data encoding="base64" compression="zlib">AAAAAA==</data>`, ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseString(t, layerDoc(1, 1, tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestChunks(t *testing.T) {
	m := mustParse(t, `<map infinite="1">
 <layer name="inf" width="4" height="2">
  <data encoding="csv">
   <chunk x="0" y="0" width="2" height="1">1,2</chunk>
   <chunk x="-2" y="0" width="1" height="2">
3,
4
</chunk>
  </data>
 </layer>
</map>`)
	if !m.Infinite {
		t.Error("map should be infinite")
	}
	l := m.Layers[0]
	want := []Chunk{
		{X: 0, Y: 0, Width: 2, Height: 1, Tiles: []uint32{1, 2}},
		{X: -2, Y: 0, Width: 1, Height: 2, Tiles: []uint32{3, 4}},
	}
	if diff := cmp.Diff(want, l.Chunks); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
	if len(l.Tiles) != 0 {
		t.Errorf("infinite layer tiles = %v", l.Tiles)
	}
}

func TestChunkSizeMismatch(t *testing.T) {
	_, err := parseString(t, layerDoc(2, 2, `<data encoding="csv"><chunk x="0" y="0" width="2" height="2">1,2,3</chunk></data>`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestParseCSVEmpty(t *testing.T) {
	tiles, err := parseCSV(" \n ")
	if err != nil || tiles != nil {
		t.Errorf("parseCSV(blank) = %v, %v", tiles, err)
	}
}

func TestEmptyInfiniteLayer(t *testing.T) {
	doc := "<map infinite=\"1\"><layer name=\"empty\" width=\"4\" height=\"4\"><data encoding=\"csv\">\n</data></layer></map>"
	m := mustParse(t, doc)
	l := m.Layers[0]
	if len(l.Tiles) != 0 || len(l.Chunks) != 0 {
		t.Errorf("layer = %+v", l)
	}

	_, err := parseString(t, layerDoc(4, 4, "<data encoding=\"csv\">\n</data>"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("finite map: err = %v, want ErrParse", err)
	}
}
