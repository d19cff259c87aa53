package pixdump

import (
	"image"
	"io"
)

// Processor options
type Processor struct {
	NewWidth   int
	NewHeight  int
	Mode       Mode
	Interp     string // resampling filter name, see FilterNames
	BGR        bool
	AutoOrient bool
}

// Validate checks the requested output dimensions. The width is checked first.
func (p *Processor) Validate() error {
	if p.NewWidth <= 0 {
		return ErrInvalidWidth
	}
	if p.NewHeight <= 0 {
		return ErrInvalidHeight
	}
	return nil
}

// Load decodes the image read from r and resizes it to the requested dimensions.
func (p *Processor) Load(r io.Reader) (*image.NRGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	resample, err := ParseFilter(p.Interp)
	if err != nil {
		return nil, err
	}

	src, err := decodeImg(r, p.AutoOrient)
	if err != nil {
		return nil, err
	}
	// Only the alpha silhouette reads the alpha channel. The color modes treat the
	// image as opaque, so transparent pixels keep their color through the resize.
	if p.Mode != ModeAlpha {
		src = dropAlpha(src)
	}
	return resizeImg(src, p.NewWidth, p.NewHeight, resample)
}

// Process decodes and resizes the image read from r,
// then prints its pixel values in the selected color space to w.
// Nothing is written to w unless the image has been successfully converted.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, err := p.Load(r)
	if err != nil {
		return err
	}
	ras, err := NewRaster(img, p.Mode, p.BGR)
	if err != nil {
		return err
	}
	return WriteRaster(w, ras)
}
