package snapmatic

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Thumbnail re-encodes an extracted JPEG stream scaled down to maxWidth,
// keeping the aspect ratio. Streams already at or under maxWidth are
// re-encoded unscaled.
func Thumbnail(jpegData []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		return nil, errors.Errorf("invalid thumbnail width %d", maxWidth)
	}

	img, err := jpeg.Decode(bytes.NewReader(jpegData))
	if err != nil {
		return nil, errors.Wrap(err, "decoding extracted jpeg")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxWidth {
		newWidth := maxWidth
		newHeight := int(float64(height) * float64(newWidth) / float64(width))
		if newHeight < 1 {
			newHeight = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.ApproxBiLinear.Scale(dst, dst.Rect, img, img.Bounds(), draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, errors.Wrap(err, "encoding thumbnail")
	}

	return buf.Bytes(), nil
}
