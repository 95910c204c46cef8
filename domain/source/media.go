package source

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var (
	// ErrNotImage is returned for files whose media type is not image/*.
	ErrNotImage = errors.New("not an image")
	// ErrUnsupported is returned for image media types without a decoder.
	ErrUnsupported = errors.New("unsupported image format")
)

// mediaTGA is used for .tga files: the format has no magic number to sniff.
const mediaTGA = "image/x-tga"

// DetectMediaType sniffs data and reports its media type and whether it is an image.
// The file name is only consulted for formats that cannot be sniffed.
func DetectMediaType(data []byte, name string) (string, bool) {
	mt := mimetype.Detect(data)
	typ := mt.String()
	if i := strings.IndexByte(typ, ';'); i >= 0 {
		typ = typ[:i]
	}
	if strings.HasPrefix(typ, "image/") {
		return typ, true
	}
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return mediaTGA, true
	}
	return typ, false
}

// Decode decodes data according to mediaType. Each format is dispatched
// explicitly so decoder registration order never matters.
func Decode(data []byte, mediaType string) (image.Image, error) {
	r := bytes.NewReader(data)
	var (
		img image.Image
		err error
	)
	switch mediaType {
	case "image/png":
		img, err = png.Decode(r)
	case "image/jpeg":
		img, err = jpeg.Decode(r)
	case "image/gif":
		img, err = gif.Decode(r)
	case "image/webp":
		img, err = webp.Decode(r)
	case "image/bmp", "image/x-ms-bmp":
		img, err = bmp.Decode(r)
	case "image/tiff":
		img, err = tiff.Decode(r)
	case mediaTGA:
		img, err = tga.Decode(r)
	default:
		return nil, fmt.Errorf("source: decode %s: %w", mediaType, ErrUnsupported)
	}
	if err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", mediaType, err)
	}
	return img, nil
}

// DecodeFile validates and decodes a file's contents into a resource for role.
// Non-image content yields ErrNotImage without attempting to decode.
func DecodeFile(role Role, name string, data []byte) (*ImageResource, error) {
	typ, ok := DetectMediaType(data, name)
	if !ok {
		return nil, fmt.Errorf("source: %s (%s): %w", name, typ, ErrNotImage)
	}
	img, err := Decode(data, typ)
	if err != nil {
		return nil, err
	}
	return NewResource(role, img, filepath.Base(name), int64(len(data)), typ), nil
}
