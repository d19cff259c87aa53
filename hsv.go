package pixdump

import (
	"image"
	"math"

	"github.com/esimov/pixdump/utils"
)

// hsvShift is the number of fractional bits used by the fixed point division tables.
const hsvShift = 12

// hueRange is the exclusive upper bound of the 8-bit hue, which is stored as degrees/2.
const hueRange = 180

var (
	satDiv [256]int
	hueDiv [256]int
)

func init() {
	for i := 1; i < 256; i++ {
		satDiv[i] = int(math.RoundToEven(float64(255<<hsvShift) / float64(i)))
		hueDiv[i] = int(math.RoundToEven(float64(hueRange<<hsvShift) / (6 * float64(i))))
	}
}

// RGBToHSV converts an 8-bit RGB triple to the 8-bit HSV representation.
// The hue is in [0, 180) (degrees halved), the saturation and value are in [0, 255].
func RGBToHSV(r, g, b uint8) (h, s, v uint8) {
	ri, gi, bi := int(r), int(g), int(b)

	vmax := utils.Max(ri, utils.Max(gi, bi))
	vmin := utils.Min(ri, utils.Min(gi, bi))
	diff := vmax - vmin

	sat := (diff*satDiv[vmax] + (1 << (hsvShift - 1))) >> hsvShift

	var hue int
	switch vmax {
	case ri:
		hue = gi - bi
	case gi:
		hue = bi - ri + 2*diff
	default:
		hue = ri - gi + 4*diff
	}
	hue = (hue*hueDiv[diff] + (1 << (hsvShift - 1))) >> hsvShift
	if hue < 0 {
		hue += hueRange
	}

	return uint8(hue), uint8(sat), uint8(vmax)
}

// rgbToHSV converts the image into a three channel HSV plane.
func rgbToHSV(src *image.NRGBA) []uint8 {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	hsv := make([]uint8, 0, dx*dy*3)

	for y := 0; y < dy; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+dx*4]
		for x := 0; x < len(row); x += 4 {
			h, s, v := RGBToHSV(row[x], row[x+1], row[x+2])
			hsv = append(hsv, h, s, v)
		}
	}
	return hsv
}
