package util

import (
	"bytes"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSwatch_PNG(t *testing.T) {
	var buf bytes.Buffer
	colors := []colorful.Color{mustHex(t, "#ff0000"), mustHex(t, "#0000ff")}
	require.NoError(t, RenderSwatch(&buf, colors, 200, 50, "png", ""))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(190, 40).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

func TestRenderSwatch_JPEGAndDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSwatch(&buf, []colorful.Color{mustHex(t, "#00ff00")}, 0, 99999, "JPG", "black"))
	img, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultSwatchSize, img.Bounds().Dx())
	assert.Equal(t, MaxSwatchSize, img.Bounds().Dy())
}

func TestRenderSwatch_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderSwatch(&buf, nil, 10, 10, "png", ""), ErrInvalidColor)
	assert.ErrorIs(t, RenderSwatch(&buf, []colorful.Color{{}}, 10, 10, "gif", ""), ErrUnsupportedImageType)
}

func TestParseColorOrWhite(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, white, ParseColorOrWhite(""))
	assert.Equal(t, white, ParseColorOrWhite("nonsense"))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, ParseColorOrWhite("bgr(0, 0, 255)"))
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}, ParseColorOrWhite("#123"))
}
