package pixdump

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultFilter is the resampling filter used when none is specified.
// It is the bilinear interpolation over the 2x2 neighbourhood of the sampled point.
const DefaultFilter = "linear"

// Resampler scales an image to exactly width x height pixels.
type Resampler func(img image.Image, width, height int) *image.NRGBA

// filters holds the supported resampling filters indexed by their command line name.
var filters = map[string]Resampler{
	"nearest": withFilter(imaging.NearestNeighbor),
	"linear":  scaleBiLinear,
	"tent":    withFilter(imaging.Linear),
	"cubic":   withFilter(imaging.CatmullRom),
	"lanczos": withFilter(imaging.Lanczos),
	"area":    withFilter(imaging.Box),
}

// withFilter returns a Resampler backed by one of imaging's convolution filters.
// When shrinking, the filter support grows with the scale factor.
func withFilter(f imaging.ResampleFilter) Resampler {
	return func(img image.Image, width, height int) *image.NRGBA {
		return imaging.Resize(img, width, height, f)
	}
}

// scaleBiLinear samples only the four source pixels surrounding each destination pixel
// center, regardless of the scale factor.
func scaleBiLinear(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FilterNames returns the names of the supported resampling filters in alphabetical order.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseFilter returns the resampling filter registered under the provided name.
// An empty name selects the DefaultFilter.
func ParseFilter(name string) (Resampler, error) {
	if name == "" {
		name = DefaultFilter
	}
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported interpolation %q, expected one of: %s",
			name, strings.Join(FilterNames(), ", "))
	}
	return f, nil
}

// decodeImg decodes the image data read from r.
// When autoOrient is set the EXIF orientation tag (if present) is applied to the decoded image.
func decodeImg(r io.Reader, autoOrient bool) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// resizeImg scales the image to exactly width x height pixels.
func resizeImg(img image.Image, width, height int, resample Resampler) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrResize)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrResize, width, height)
	}
	dst := resample(img, width, height)
	if dx, dy := dst.Bounds().Dx(), dst.Bounds().Dy(); dx != width || dy != height {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrResize, dx, dy, width, height)
	}
	return dst, nil
}

// dropAlpha returns the image as *image.NRGBA with every pixel made fully opaque.
// The stored color of transparent pixels is kept as is.
func dropAlpha(img image.Image) *image.NRGBA {
	src := imgToNRGBA(img)
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}
