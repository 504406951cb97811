// Package tmxparser loads Tiled TMX maps together with the TSX tilesets
// and TX object templates they reference.
package tmxparser

import (
	"errors"
	"io/fs"
	"math"
	"os"
)

// SetMaxIncludeDepth limits how deeply tilesets and templates may pull in
// further files. Values below 1 restore the default. Parses already
// running keep the limit they started with.
func SetMaxIncludeDepth(depth int) {
	switch {
	case depth < 1:
		depth = 0
	case depth > math.MaxInt32:
		depth = math.MaxInt32
	}
	maxIncludeDepth.Store(int32(depth))
}

// Parse loads the map at inputFile from the local filesystem. Tileset,
// template and image references are resolved against the directory of
// inputFile.
func Parse(inputFile string) (*Map, error) {
	if inputFile == "" {
		return nil, errors.New("input file is empty")
	}
	p := newParser(inputFile, os.ReadFile, false)
	return p.parseMap(inputFile)
}

// ParseFS is like Parse but reads the map and everything it references
// from fsys.
func ParseFS(fsys fs.FS, name string) (*Map, error) {
	if name == "" {
		return nil, errors.New("input file is empty")
	}
	read := func(n string) ([]byte, error) {
		return fs.ReadFile(fsys, n)
	}
	p := newParser(name, read, true)
	return p.parseMap(name)
}
