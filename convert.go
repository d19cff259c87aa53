package pixdump

import (
	"image"

	"github.com/disintegration/imaging"
)

// rgbToGrayscale converts an image to grayscale mode and
// returns the luma values as an one dimensional array.
func rgbToGrayscale(src *image.NRGBA) []uint8 {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	gray := make([]uint8, 0, dx*dy)

	// The converted image holds the luma replicated in the R, G and B channels.
	dst := imaging.Grayscale(src)
	for y := 0; y < dy; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+dx*4]
		for x := 0; x < len(row); x += 4 {
			gray = append(gray, row[x])
		}
	}
	return gray
}

// alphaMask returns the binary silhouette of the image:
// 1 for every pixel which is not fully transparent, 0 otherwise.
func alphaMask(src *image.NRGBA) []uint8 {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	mask := make([]uint8, 0, dx*dy)

	for y := 0; y < dy; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+dx*4]
		for x := 3; x < len(row); x += 4 {
			if row[x] > 0 {
				mask = append(mask, 1)
			} else {
				mask = append(mask, 0)
			}
		}
	}
	return mask
}
