package assets

import (
	"bytes"
	"image"

	// Baseline codec. Hosts needing more formats blank-import their own
	// decoders; image.Decode picks them up by convention.
	_ "image/jpeg"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/ambientcg/resources"
)

/**
 * @brief The codec collaborator: decodes slot bytes into channel buffers
 * and interleaved images. Stateless.
 */
type ImageDecoder struct{}

func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{}
}

// DecodeChannel decodes a grayscale source image into a single-channel
// buffer. JPEG sources decode to YCbCr, whose Y plane already is the
// grayscale data, so that path is a row copy; anything else goes through a
// color-model conversion into a gray image. Never resizes.
func (d *ImageDecoder) DecodeChannel(data []byte) (*resources.ChannelBuffer, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cb := &resources.ChannelBuffer{
		Width:  uint32(w),
		Height: uint32(h),
		Pixels: make([]uint8, w*h),
	}

	switch img := src.(type) {
	case *image.YCbCr:
		for y := 0; y < h; y++ {
			copy(cb.Pixels[y*w:(y+1)*w], img.Y[y*img.YStride:y*img.YStride+w])
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			copy(cb.Pixels[y*w:(y+1)*w], img.Pix[y*img.Stride:y*img.Stride+w])
		}
	default:
		gray := &image.Gray{Pix: cb.Pixels, Stride: w, Rect: image.Rect(0, 0, w, h)}
		draw.Copy(gray, image.Point{}, src, bounds, draw.Src, nil)
	}
	return cb, nil
}

// DecodeImage decodes a source image into interleaved RGBA8.
func (d *ImageDecoder) DecodeImage(data []byte) (*resources.ImageData, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := &resources.ImageData{
		ChannelCount: 4,
		Width:        uint32(w),
		Height:       uint32(h),
		Pixels:       make([]uint8, w*h*4),
	}
	rgba := &image.RGBA{Pix: out.Pixels, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	draw.Copy(rgba, image.Point{}, src, bounds, draw.Src, nil)
	return out, nil
}
