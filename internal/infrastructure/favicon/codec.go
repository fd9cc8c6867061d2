package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"

	"github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
)

// MaxIconBytes bounds how much of a source image is read.
const MaxIconBytes = 1 << 20

// MaxIconDimension bounds the width and height of a source image.
const MaxIconDimension = 1024

var (
	// ErrIconTooLarge is returned when a source image exceeds MaxIconBytes.
	ErrIconTooLarge = errors.New("icon exceeds size limit")
	// ErrIconDimensions is returned when a source image is wider or taller
	// than MaxIconDimension.
	ErrIconDimensions = errors.New("icon exceeds dimension limit")
)

// Codec turns favicon files into the PNG bytes kept by the cache.
type Codec struct{}

var _ port.IconCodec = (*Codec)(nil)

// NewCodec creates a codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode decodes PNG, JPEG, GIF, BMP, WebP or ICO data and re-encodes it as PNG.
func (c *Codec) Encode(r io.Reader) (entity.Icon, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxIconBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	if len(data) > MaxIconBytes {
		return nil, ErrIconTooLarge
	}

	if err := checkDimensions(data); err != nil {
		return nil, err
	}

	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, toNRGBA(img)); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return entity.Icon(buf.Bytes()), nil
}

// Dimensions reports the size of a PNG icon without decoding its pixels.
func (c *Codec) Dimensions(icon entity.Icon) (width, height int, err error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(icon))
	if err != nil {
		return 0, 0, fmt.Errorf("decode png config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}

	// Standard decoders failed, favicons are often ICO.
	img, icoErr := ico.Decode(bytes.NewReader(data))
	if icoErr != nil {
		return nil, fmt.Errorf("decode icon: %w", errors.Join(err, icoErr))
	}
	return img, nil
}

// checkDimensions reads only the image header, so an oversized image is
// refused before its pixels are allocated.
func checkDimensions(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		cfg, err = ico.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			// Left to decode to report.
			return nil
		}
	}
	if cfg.Width > MaxIconDimension || cfg.Height > MaxIconDimension {
		return fmt.Errorf("%w: %dx%d", ErrIconDimensions, cfg.Width, cfg.Height)
	}
	return nil
}

// toNRGBA normalizes the pixel layout so equal images encode to equal bytes.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
