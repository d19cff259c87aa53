package pixdump

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
)

// Mode selects the color space the pixel values are printed in.
type Mode int

// The supported output modes.
const (
	ModeRGB Mode = iota
	ModeGray
	ModeHue
	ModeHSV
	ModeAlpha
)

// SelectMode resolves the color space flags into an output mode.
// Grayscale takes precedence over hue, which takes precedence over HSV.
// RGB is used when none of them is set.
func SelectMode(gray, hue, hsv bool) Mode {
	switch {
	case gray:
		return ModeGray
	case hue:
		return ModeHue
	case hsv:
		return ModeHSV
	default:
		return ModeRGB
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeGray:
		return "gray"
	case ModeHue:
		return "hue"
	case ModeHSV:
		return "hsv"
	case ModeAlpha:
		return "alpha"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Channels returns the number of values printed for a single pixel.
func (m Mode) Channels() int {
	switch m {
	case ModeRGB, ModeHSV:
		return 3
	default:
		return 1
	}
}

// Raster is a read-only plane of converted pixel values.
type Raster interface {
	// Bounds returns the raster dimensions. The min-point is always (0, 0).
	Bounds() image.Rectangle
	// Channels returns the number of values stored for each pixel.
	Channels() int
	// Pixel appends the values of the pixel at (x, y) to dst.
	Pixel(x, y int, dst []uint8) []uint8
}

// plane is a Raster backed by an interleaved byte slice.
type plane struct {
	pix      []uint8
	channels int
	width    int
	height   int
}

func (p *plane) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }
func (p *plane) Channels() int           { return p.channels }

func (p *plane) Pixel(x, y int, dst []uint8) []uint8 {
	i := (y*p.width + x) * p.channels
	return append(dst, p.pix[i:i+p.channels]...)
}

// NewRaster converts the image into the color space selected by mode.
// If bgr is set the RGB channels are stored in blue, green, red order.
func NewRaster(img image.Image, mode Mode, bgr bool) (Raster, error) {
	src := imgToNRGBA(img)
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	if dx == 0 || dy == 0 {
		switch mode {
		case ModeGray:
			return nil, fmt.Errorf("%w: empty image", ErrGrayConvert)
		case ModeHue, ModeHSV:
			return nil, fmt.Errorf("%w: empty image", ErrHSVConvert)
		}
	}

	p := &plane{
		channels: mode.Channels(),
		width:    dx,
		height:   dy,
	}

	switch mode {
	case ModeRGB:
		p.pix = make([]uint8, 0, dx*dy*3)
		for y := 0; y < dy; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+dx*4]
			for x := 0; x < len(row); x += 4 {
				if bgr {
					p.pix = append(p.pix, row[x+2], row[x+1], row[x])
				} else {
					p.pix = append(p.pix, row[x], row[x+1], row[x+2])
				}
			}
		}
	case ModeGray:
		p.pix = rgbToGrayscale(src)
	case ModeHSV:
		p.pix = rgbToHSV(src)
	case ModeHue:
		hsv := rgbToHSV(src)
		p.pix = make([]uint8, 0, dx*dy)
		for i := 0; i < len(hsv); i += 3 {
			p.pix = append(p.pix, hsv[i])
		}
	case ModeAlpha:
		p.pix = alphaMask(src)
	default:
		return nil, fmt.Errorf("unsupported mode: %v", mode)
	}

	return p, nil
}

// WriteRaster prints the raster as text: one line per row, every value followed by a space.
func WriteRaster(w io.Writer, r Raster) error {
	var (
		bw   = bufio.NewWriter(w)
		b    = r.Bounds()
		px   = make([]uint8, 0, r.Channels())
		line []byte
	)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		line = line[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			px = r.Pixel(x, y, px[:0])
			for _, v := range px {
				line = strconv.AppendUint(line, uint64(v), 10)
				line = append(line, ' ')
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
