package util

import (
	"errors"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
)

// 色卡尺寸限制
const (
	DefaultSwatchSize = 256
	MaxSwatchSize     = 2048
	swatchBandWidth   = 16
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

// ImageNewRGBAWithBG 把任意 image.Image 叠到统一底色
func ImageNewRGBAWithBG(src image.Image, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
	return dst
}

// ParseColorOrWhite 任意支持的格式都可以，失败则返回白色
func ParseColorOrWhite(s string) color.RGBA {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if strings.TrimSpace(s) == "" {
		return white
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return white
	}
	r, g, b := parsed.Color.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// swatchSource 每个颜色画一条竖带，之后再缩放到目标尺寸
func swatchSource(colors []colorful.Color) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, swatchBandWidth*len(colors), swatchBandWidth))
	for i, c := range colors {
		r, g, b := c.Clamped().RGB255()
		band := image.Rect(i*swatchBandWidth, 0, (i+1)*swatchBandWidth, swatchBandWidth)
		draw.Draw(src, band, &image.Uniform{C: color.RGBA{R: r, G: g, B: b, A: 255}}, image.Point{}, draw.Src)
	}
	return src
}

func clampSize(v int) int {
	if v <= 0 {
		return DefaultSwatchSize
	}
	if v > MaxSwatchSize {
		return MaxSwatchSize
	}
	return v
}

// RenderSwatch 生成色卡图片，支持 png / jpg / jpeg
func RenderSwatch(w io.Writer, colors []colorful.Color, width, height int, imageType, bgColor string) error {
	if len(colors) == 0 {
		return fmt.Errorf("%w: no colors", ErrInvalidColor)
	}
	width, height = clampSize(width), clampSize(height)

	// 色带之间需要硬边，用最近邻缩放
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), swatchSource(colors), image.Rect(0, 0, swatchBandWidth*len(colors), swatchBandWidth), xdraw.Src, nil)

	switch strings.ToLower(imageType) {
	case "", "png":
		return png.Encode(w, dst)
	case "jpg", "jpeg":
		// JPEG 不支持透明度：叠到统一底色上
		bg := ParseColorOrWhite(bgColor)
		return jpeg.Encode(w, ImageNewRGBAWithBG(dst, bg), &jpeg.Options{Quality: 90})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedImageType, imageType)
	}
}
