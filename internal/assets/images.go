// Package assets loads the images, font and sounds the window frontend
// draws and plays. Every asset is optional: a missing file is logged and
// the caller draws or plays a fallback.
package assets

import (
	_ "image/png"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Images maps asset names to loaded images.
type Images struct {
	dir    string
	images map[string]*ebiten.Image
}

// LoadImages loads every named image from dir.
func LoadImages(dir string, names ...string) *Images {
	im := &Images{dir: dir, images: make(map[string]*ebiten.Image)}
	for _, name := range names {
		im.load(name)
	}
	return im
}

func (im *Images) load(name string) {
	if _, ok := im.images[name]; ok {
		return
	}
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(im.dir, name))
	if err != nil {
		log.Println("Error loading image:", err)
		im.images[name] = nil
		return
	}
	im.images[name] = img
}

// Get returns the image for name, or nil when it could not be loaded.
func (im *Images) Get(name string) *ebiten.Image {
	return im.images[name]
}
