package imagepkg

import (
	"bytes"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WEBP for foreground images

	"github.com/youruser/sgmapp/internal/util"
)

// LoadImage reads and decodes an image file (PNG, JPEG, BMP, GIF, TIFF, WEBP).
// Missing files and undecodable data both come back as *ImageDecodeError.
func LoadImage(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ImageDecodeError{Path: path, Err: err}
	}
	return DecodeImage(path, b)
}

// DecodeImage decodes in-memory image bytes; name is only used in errors.
func DecodeImage(name string, b []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &ImageDecodeError{Path: name, Err: err}
	}
	return img, nil
}

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	return DecodeImage(url, body)
}
