package util

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"math"
)

// 输出格式
const (
	FormatHex    = "hex"
	FormatRGB    = "rgb"
	FormatBGR    = "bgr"
	FormatHSL    = "hsl"
	FormatHSV    = "hsv"
	FormatCMYK   = "cmyk"
	FormatOpenGL = "opengl"
)

type ColorFormat struct {
	Title  string `json:"title"`
	Format string `json:"format"`
}

// ColorFormats 页面上格式卡片的顺序
var ColorFormats = []ColorFormat{
	{Title: "Hexadecimal", Format: FormatHex},
	{Title: "RGB", Format: FormatRGB},
	{Title: "BGR (OpenCV)", Format: FormatBGR},
	{Title: "HSL", Format: FormatHSL},
	{Title: "HSV/HSB", Format: FormatHSV},
	{Title: "CMYK", Format: FormatCMYK},
	{Title: "OpenGL Float", Format: FormatOpenGL},
}

// FormattedValue 某个格式下的字符串表示
type FormattedValue struct {
	ColorFormat
	Value string `json:"value"`
}

func round(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

// RGB255 四舍五入后的 0-255 通道
func RGB255(c colorful.Color) ChannelTriple {
	c = c.Clamped()
	return ChannelTriple{
		float64(round(c.R * 255)),
		float64(round(c.G * 255)),
		float64(round(c.B * 255)),
	}
}

// CMYK 返回 0-1 的 c, m, y, k；纯黑时 c/m/y 为 0
func CMYK(c colorful.Color) (float64, float64, float64, float64) {
	c = c.Clamped()
	k := 1 - math.Max(c.R, math.Max(c.G, c.B))
	if k >= 1 {
		return 0, 0, 0, 1
	}
	return (1 - c.R - k) / (1 - k), (1 - c.G - k) / (1 - k), (1 - c.B - k) / (1 - k), k
}

// FormatColor 把颜色格式化成指定格式的字符串，未知格式按 hex 输出
func FormatColor(c colorful.Color, format string) string {
	c = c.Clamped()
	switch format {
	case FormatRGB:
		t := RGB255(c)
		return fmt.Sprintf("rgb(%d, %d, %d)", int(t[0]), int(t[1]), int(t[2]))
	case FormatBGR:
		t := RGB255(c).Reversed()
		return fmt.Sprintf("bgr(%d, %d, %d)", int(t[0]), int(t[1]), int(t[2]))
	case FormatHSL:
		h, s, l := c.Hsl()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", round(h), round(s*100), round(l*100))
	case FormatHSV:
		h, s, v := c.Hsv()
		return fmt.Sprintf("hsv(%d, %d%%, %d%%)", round(h), round(s*100), round(v*100))
	case FormatCMYK:
		cy, m, y, k := CMYK(c)
		return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", round(cy*100), round(m*100), round(y*100), round(k*100))
	case FormatOpenGL:
		return fmt.Sprintf("(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
	default:
		return c.Hex()
	}
}

// AllFormats 按 ColorFormats 的顺序输出全部格式
func AllFormats(c colorful.Color) []FormattedValue {
	values := make([]FormattedValue, 0, len(ColorFormats))
	for _, f := range ColorFormats {
		values = append(values, FormattedValue{ColorFormat: f, Value: FormatColor(c, f.Format)})
	}
	return values
}

type FormatField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Range       string `json:"range"`
}

type FormatInfo struct {
	Format      string        `json:"format"`
	FullName    string        `json:"fullName"`
	Description string        `json:"description"`
	Fields      []FormatField `json:"fields"`
}

// FormatInfos 各格式的说明
var FormatInfos = []FormatInfo{
	{
		Format:      FormatHex,
		FullName:    "Hexadecimal Color",
		Description: "Base-16 notation, each pair of digits is the red, green or blue intensity.",
		Fields: []FormatField{
			{Name: "Red", Description: "First two hex digits", Range: "00-FF (0-255)"},
			{Name: "Green", Description: "Middle two hex digits", Range: "00-FF (0-255)"},
			{Name: "Blue", Description: "Last two hex digits", Range: "00-FF (0-255)"},
		},
	},
	{
		Format:      FormatRGB,
		FullName:    "Red Green Blue",
		Description: "Additive model combining red, green and blue light, the standard for displays.",
		Fields: []FormatField{
			{Name: "Red (R)", Description: "Red light intensity", Range: "0-255"},
			{Name: "Green (G)", Description: "Green light intensity", Range: "0-255"},
			{Name: "Blue (B)", Description: "Blue light intensity", Range: "0-255"},
		},
	},
	{
		Format:      FormatBGR,
		FullName:    "Blue Green Red (OpenCV)",
		Description: "RGB with the channel order reversed, as used by OpenCV image buffers.",
		Fields: []FormatField{
			{Name: "Blue (B)", Description: "Blue light intensity", Range: "0-255"},
			{Name: "Green (G)", Description: "Green light intensity", Range: "0-255"},
			{Name: "Red (R)", Description: "Red light intensity", Range: "0-255"},
		},
	},
	{
		Format:      FormatHSL,
		FullName:    "Hue Saturation Lightness",
		Description: "Cylindrical model: hue angle, saturation and lightness.",
		Fields: []FormatField{
			{Name: "Hue (H)", Description: "Angle on the color wheel", Range: "0°-360°"},
			{Name: "Saturation (S)", Description: "Purity of the color", Range: "0%-100%"},
			{Name: "Lightness (L)", Description: "(max + min) / 2 of the RGB channels", Range: "0%-100%"},
		},
	},
	{
		Format:      FormatHSV,
		FullName:    "Hue Saturation Value (Brightness)",
		Description: "Like HSL but with value, the maximum RGB channel, instead of lightness.",
		Fields: []FormatField{
			{Name: "Hue (H)", Description: "Angle on the color wheel", Range: "0°-360°"},
			{Name: "Saturation (S)", Description: "(max - min) / max of the RGB channels", Range: "0%-100%"},
			{Name: "Value (V)", Description: "max(R, G, B) / 255", Range: "0%-100%"},
		},
	},
	{
		Format:      FormatCMYK,
		FullName:    "Cyan Magenta Yellow Key (Black)",
		Description: "Subtractive model used in printing.",
		Fields: []FormatField{
			{Name: "Cyan (C)", Description: "Cyan ink", Range: "0%-100%"},
			{Name: "Magenta (M)", Description: "Magenta ink", Range: "0%-100%"},
			{Name: "Yellow (Y)", Description: "Yellow ink", Range: "0%-100%"},
			{Name: "Key (K)", Description: "Black ink, 1 - max(R, G, B) / 255", Range: "0%-100%"},
		},
	},
	{
		Format:      FormatOpenGL,
		FullName:    "OpenGL Float",
		Description: "Normalized RGB floats as passed to shaders and glClearColor.",
		Fields: []FormatField{
			{Name: "Red", Description: "R / 255", Range: "0.0-1.0"},
			{Name: "Green", Description: "G / 255", Range: "0.0-1.0"},
			{Name: "Blue", Description: "B / 255", Range: "0.0-1.0"},
		},
	},
}
