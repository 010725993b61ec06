package thumbnails

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a resolved thumbnail: the fetched payload and its decoded form
type Image struct {
	ID      string
	Bytes   []byte
	Format  string
	Decoded image.Image
}

// Bounds returns the decoded size
func (i *Image) Bounds() image.Rectangle {
	if i == nil || i.Decoded == nil {
		return image.Rectangle{}
	}
	return i.Decoded.Bounds()
}

// Decode turns a fetched payload into an Image
func Decode(id string, data []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail %s: %w", id, err)
	}
	return &Image{ID: id, Bytes: data, Format: format, Decoded: img}, nil
}
