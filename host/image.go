package host

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"
)

// Picture adapts a decoded image.Image to Image.
type Picture struct {
	Name string
	Img  image.Image
}

// NewPicture wraps img under name.
func NewPicture(name string, img image.Image) *Picture {
	return &Picture{Name: name, Img: img}
}

// LoadPicture decodes the PNG or JPEG file at path.
func LoadPicture(path string) (*Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return NewPicture(path, img), nil
}

// Dimensions implements Image.
func (p *Picture) Dimensions() (int, int) {
	b := p.Img.Bounds()
	return b.Dx(), b.Dy()
}

// Blank is an Image without pixel data, useful as a placeholder texture.
type Blank struct {
	W, H int
}

// Dimensions implements Image.
func (b *Blank) Dimensions() (int, int) { return b.W, b.H }
