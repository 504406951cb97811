package atlas

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// LoadImages decodes the image of every tileset from the local
// filesystem. Tileset image paths already include the map directory.
func (a *Atlas) LoadImages() error {
	return a.load(func(name string) (io.ReadCloser, error) {
		return os.Open(name)
	})
}

// LoadImagesFS is like LoadImages but opens the images in fsys.
func (a *Atlas) LoadImagesFS(fsys fs.FS) error {
	return a.load(func(name string) (io.ReadCloser, error) {
		return fsys.Open(name)
	})
}

func (a *Atlas) load(open func(string) (io.ReadCloser, error)) error {
	for i, ts := range a.tilesets {
		if ts.ImagePath == "" {
			continue
		}
		img, err := decode(open, ts.ImagePath)
		if err != nil {
			return err
		}
		a.images[i] = img
	}
	return nil
}

func decode(open func(string) (io.ReadCloser, error), name string) (image.Image, error) {
	f, err := open(name)
	if err != nil {
		return nil, fmt.Errorf("atlas: open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("atlas: decode %s: %w", name, err)
	}
	return img, nil
}

// Image returns the decoded image of tileset i, or nil before loading.
func (a *Atlas) Image(i int) image.Image {
	if i < 0 || i >= len(a.images) {
		return nil
	}
	return a.images[i]
}

// SubImage returns the pixels of gid. It fails for the empty tile, for
// unknown gids and for tilesets whose image was not loaded.
func (a *Atlas) SubImage(gid uint32) (image.Image, bool) {
	t, ok := a.Tile(gid)
	if !ok {
		return nil, false
	}
	si, ok := a.images[t.Tileset].(subImager)
	if !ok {
		return nil, false
	}
	return si.SubImage(t.Rect.Image()), true
}
