package ui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"carta/internal/edit"

	"github.com/qeesung/image2ascii/convert"
)

// imageCache keeps the last rendered photo so View does not re-decode it on
// every frame.
type imageCache struct {
	uri    string
	width  int
	height int
	art    string
	err    error
}

// render returns the photo in uri as coloured ASCII art.
func (c *imageCache) render(uri string, width, height int) (string, error) {
	if c.uri == uri && c.width == width && c.height == height {
		return c.art, c.err
	}
	c.uri, c.width, c.height = uri, width, height
	c.art, c.err = renderDataURI(uri, width, height)
	return c.art, c.err
}

func renderDataURI(uri string, width, height int) (string, error) {
	_, data, err := edit.DecodeDataURI(uri)
	if err != nil {
		return "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	return convertToASCII(img, width, height), nil
}

// convertToASCII converts an image to colored ASCII art.
func convertToASCII(img image.Image, targetWidth, targetHeight int) string {
	converter := convert.NewImageConverter()

	opts := convert.DefaultOptions
	opts.FixedWidth = targetWidth
	opts.FixedHeight = targetHeight
	opts.Colored = true
	opts.Ratio = 0.5 // terminal cells are twice as tall as wide

	return converter.Image2ASCIIString(img, &opts)
}
