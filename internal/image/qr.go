package imagepkg

import (
	"bytes"
	"fmt"
	"image/png"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/sgmapp/internal/util"
)

const DefaultQRSize = 400

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	_, err = png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	return pngBytes, nil
}

// QRCodePath is where a game's QR code asset lives.
func QRCodePath(folder, basename string) string {
	return filepath.Join(folder, basename+"_qrcode.png")
}

// SaveQRCode writes <folder>/<basename>_qrcode.png and returns its path.
func SaveQRCode(folder, basename, text string, size int) (string, error) {
	if basename == "" {
		return "", invalidSpec("no basename for qr code")
	}
	if text == "" {
		return "", invalidSpec("no qr code text")
	}
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return "", fmt.Errorf("qr code for %q: %w", basename, err)
	}
	dst := QRCodePath(folder, basename)
	if err := util.WriteFileAtomic(dst, b); err != nil {
		return "", &IOError{Path: dst, Err: err}
	}
	return dst, nil
}
