package mediasafety

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	DefaultMaxFrameDimension = 320
	DefaultMinPixels         = 1024
)

// SkinBands bound the YCbCr values counted as skin. Y is exclusive, the
// chroma bounds are inclusive.
type SkinBands struct {
	MinY  uint8
	MinCb uint8
	MaxCb uint8
	MinCr uint8
	MaxCr uint8
}

var DefaultSkinBands = SkinBands{MinY: 80, MinCb: 77, MaxCb: 127, MinCr: 133, MaxCr: 173}

func (b SkinBands) IsSkin(y, cb, cr uint8) bool {
	return y > b.MinY &&
		cb >= b.MinCb && cb <= b.MaxCb &&
		cr >= b.MinCr && cr <= b.MaxCr
}

// SkinRatio returns skinPixels/totalPixels, or 0 when the image has fewer
// than minPixels pixels.
func SkinRatio(img image.Image, bands SkinBands, minPixels int) float64 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 || total < minPixels {
		return 0
	}

	skin := 0
	if rgba, ok := img.(*image.RGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := rgba.Pix[rgba.PixOffset(bounds.Min.X, y):]
			for x := 0; x < bounds.Dx(); x++ {
				i := x * 4
				yy, cb, cr := color.RGBToYCbCr(row[i], row[i+1], row[i+2])
				if bands.IsSkin(yy, cb, cr) {
					skin++
				}
			}
		}
		return float64(skin) / float64(total)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			yy, cb, cr := color.RGBToYCbCr(c.R, c.G, c.B)
			if bands.IsSkin(yy, cb, cr) {
				skin++
			}
		}
	}
	return float64(skin) / float64(total)
}

// Downscale returns an RGBA copy whose longest side is at most maxDim.
// Smaller images are copied unscaled.
func Downscale(img image.Image, maxDim int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = max(1, h*maxDim/w)
			w = maxDim
		} else {
			w = max(1, w*maxDim/h)
			h = maxDim
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
