package pixdump

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaster_RGBToHSV(t *testing.T) {
	testCases := []struct {
		name    string
		r, g, b uint8
		h, s, v uint8
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 255},
		{"gray", 128, 128, 128, 0, 0, 128},
		{"red", 255, 0, 0, 0, 255, 255},
		{"green", 0, 255, 0, 60, 255, 255},
		{"blue", 0, 0, 255, 120, 255, 255},
		{"yellow", 255, 255, 0, 30, 255, 255},
		{"cyan", 0, 255, 255, 90, 255, 255},
		{"magenta", 255, 0, 255, 150, 255, 255},
		{"brown", 128, 64, 0, 15, 255, 128},
		{"pale red", 255, 128, 128, 0, 127, 255},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tc.r, tc.g, tc.b)
			assert.Equal(t, []uint8{tc.h, tc.s, tc.v}, []uint8{h, s, v})
		})
	}
}

func TestRaster_HueRange(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				h, _, _ := RGBToHSV(uint8(r), uint8(g), uint8(b))
				if h >= hueRange {
					t.Fatalf("hue of (%d, %d, %d) out of range: %d", r, g, b, h)
				}
			}
		}
	}
}

func TestRaster_SelectMode(t *testing.T) {
	assert.Equal(t, ModeRGB, SelectMode(false, false, false))
	assert.Equal(t, ModeGray, SelectMode(true, true, true))
	assert.Equal(t, ModeHue, SelectMode(false, true, true))
	assert.Equal(t, ModeHSV, SelectMode(false, false, true))

	assert.Equal(t, "hsv", ModeHSV.String())
	assert.Equal(t, "alpha", ModeAlpha.String())
	assert.Equal(t, "Mode(42)", Mode(42).String())
}

func TestRaster_Modes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 200, B: 30, A: 0})

	testCases := []struct {
		mode Mode
		bgr  bool
		want string
	}{
		{ModeRGB, false, "255 0 0 10 200 30 \n"},
		{ModeRGB, true, "0 0 255 30 200 10 \n"},
		{ModeGray, false, "76 124 \n"},
		{ModeHue, false, "0 63 \n"},
		{ModeHSV, false, "0 255 255 63 242 200 \n"},
		{ModeAlpha, false, "1 0 \n"},
	}

	for _, tc := range testCases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			ras, err := NewRaster(img, tc.mode, tc.bgr)
			require.NoError(t, err)
			assert.Equal(t, tc.mode.Channels(), ras.Channels())

			var buf bytes.Buffer
			require.NoError(t, WriteRaster(&buf, ras))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRaster_Dimensions(t *testing.T) {
	img := makeNRGBAImage(image.Rect(0, 0, 16, 16), gradient256())

	for _, mode := range []Mode{ModeRGB, ModeGray, ModeHue, ModeHSV, ModeAlpha} {
		ras, err := NewRaster(img, mode, false)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteRaster(&buf, ras))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 16)
		for _, line := range lines {
			assert.Len(t, strings.Fields(line), 16*mode.Channels())
			assert.True(t, strings.HasSuffix(line, " "))
		}
	}
}

func TestRaster_AlphaWithoutAlphaChannel(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 3, 2), image.YCbCrSubsampleRatio444)

	ras, err := NewRaster(img, ModeAlpha, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRaster(&buf, ras))
	assert.Equal(t, "1 1 1 \n1 1 1 \n", buf.String())
}

func TestRaster_EmptyImageConversion(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))

	_, err := NewRaster(empty, ModeGray, false)
	assert.ErrorIs(t, err, ErrGrayConvert)

	_, err = NewRaster(empty, ModeHue, false)
	assert.ErrorIs(t, err, ErrHSVConvert)

	_, err = NewRaster(empty, ModeHSV, false)
	assert.ErrorIs(t, err, ErrHSVConvert)
	assert.False(t, errors.Is(err, ErrGrayConvert))
}

func TestRaster_WriteFailure(t *testing.T) {
	ras, err := NewRaster(image.NewNRGBA(image.Rect(0, 0, 4, 4)), ModeRGB, false)
	require.NoError(t, err)

	err = WriteRaster(failingWriter{}, ras)
	assert.ErrorIs(t, err, ErrWrite)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// gradient256 returns 256 distinct colors.
func gradient256() []color.Color {
	colors := make([]color.Color, 256)
	for i := range colors {
		colors[i] = color.NRGBA{R: uint8(i), G: uint8(255 - i), B: uint8(i * 7), A: 255}
	}
	return colors
}
