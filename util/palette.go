package util

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"math"
	"math/rand"
	"strings"
)

// 网页安全色每个通道只能取这几个值（51 的倍数）
var webSafeValues = [...]int{0, 51, 102, 153, 204, 255}

// 系统色（基础 CSS 命名色对应的 hex）
var systemColorHexes = map[string]struct{}{
	"#000000": {}, "#ffffff": {}, "#ff0000": {}, "#00ff00": {}, "#0000ff": {}, "#ffff00": {},
	"#ff00ff": {}, "#00ffff": {}, "#800000": {}, "#008000": {}, "#000080": {}, "#808000": {},
	"#800080": {}, "#008080": {}, "#c0c0c0": {}, "#808080": {}, "#ffa500": {}, "#a52a2a": {},
	"#ffc0cb": {}, "#add8e6": {}, "#90ee90": {}, "#ffb6c1": {}, "#f0e68c": {},
}

// IsWebSafe 四舍五入后每个通道都在 webSafeValues 里
func IsWebSafe(c colorful.Color) bool {
	for _, ch := range RGB255(c) {
		found := false
		for _, v := range webSafeValues {
			if int(ch) == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func IsSystemColor(c colorful.Color) bool {
	_, ok := systemColorHexes[c.Clamped().Hex()]
	return ok
}

// WebSafeColors 生成 216 个网页安全色，R 为最外层循环
func WebSafeColors() []string {
	colors := make([]string, 0, len(webSafeValues)*len(webSafeValues)*len(webSafeValues))
	for _, r := range webSafeValues {
		for _, g := range webSafeValues {
			for _, b := range webSafeValues {
				colors = append(colors, fmt.Sprintf("#%02X%02X%02X", r, g, b))
			}
		}
	}
	return colors
}

type NamedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type ColorCategory struct {
	Category string       `json:"category"`
	Colors   []NamedColor `json:"colors"`
}

// SystemColors 按色系分组的命名色
var SystemColors = []ColorCategory{
	{"Neutrals", []NamedColor{
		{"Black", "#000000"}, {"DimGray", "#696969"}, {"Gray", "#808080"}, {"DarkGray", "#A9A9A9"},
		{"Silver", "#C0C0C0"}, {"LightGray", "#D3D3D3"}, {"Gainsboro", "#DCDCDC"}, {"White", "#FFFFFF"},
	}},
	{"Reds", []NamedColor{
		{"DarkRed", "#8B0000"}, {"Red", "#FF0000"}, {"Crimson", "#DC143C"}, {"FireBrick", "#B22222"},
		{"IndianRed", "#CD5C5C"}, {"LightCoral", "#F08080"}, {"Salmon", "#FA8072"}, {"LightSalmon", "#FFA07A"},
	}},
	{"Oranges", []NamedColor{
		{"OrangeRed", "#FF4500"}, {"DarkOrange", "#FF8C00"}, {"Orange", "#FFA500"}, {"Coral", "#FF7F50"},
		{"Tomato", "#FF6347"},
	}},
	{"Yellows", []NamedColor{
		{"Gold", "#FFD700"}, {"Yellow", "#FFFF00"}, {"LightYellow", "#FFFFE0"}, {"LemonChiffon", "#FFFACD"},
		{"Khaki", "#F0E68C"},
	}},
	{"Greens", []NamedColor{
		{"DarkGreen", "#006400"}, {"Green", "#008000"}, {"ForestGreen", "#228B22"}, {"LimeGreen", "#32CD32"},
		{"Lime", "#00FF00"}, {"SpringGreen", "#00FF7F"}, {"MediumSeaGreen", "#3CB371"}, {"LightGreen", "#90EE90"},
	}},
	{"Blues", []NamedColor{
		{"Navy", "#000080"}, {"DarkBlue", "#00008B"}, {"MediumBlue", "#0000CD"}, {"Blue", "#0000FF"},
		{"RoyalBlue", "#4169E1"}, {"SteelBlue", "#4682B4"}, {"DodgerBlue", "#1E90FF"}, {"DeepSkyBlue", "#00BFFF"},
		{"SkyBlue", "#87CEEB"}, {"LightBlue", "#ADD8E6"},
	}},
	{"Purples", []NamedColor{
		{"Indigo", "#4B0082"}, {"Purple", "#800080"}, {"DarkMagenta", "#8B008B"}, {"DarkViolet", "#9400D3"},
		{"BlueViolet", "#8A2BE2"}, {"MediumPurple", "#9370DB"}, {"Plum", "#DDA0DD"}, {"Lavender", "#E6E6FA"},
	}},
	{"Pinks", []NamedColor{
		{"DeepPink", "#FF1493"}, {"HotPink", "#FF69B4"}, {"Pink", "#FFC0CB"}, {"LightPink", "#FFB6C1"},
	}},
	{"Browns", []NamedColor{
		{"Maroon", "#800000"}, {"Brown", "#A52A2A"}, {"SaddleBrown", "#8B4513"}, {"Sienna", "#A0522D"},
		{"Chocolate", "#D2691E"}, {"Peru", "#CD853F"}, {"Tan", "#D2B48C"}, {"Wheat", "#F5DEB3"},
	}},
}

// PaletteSlot 调色板中的一格，locked 的格子重新生成时保持不变
type PaletteSlot struct {
	Hex    string `json:"hex"`
	Locked bool   `json:"locked"`
}

func DefaultPalette() []PaletteSlot {
	return []PaletteSlot{
		{Hex: "#FF6B6B"}, {Hex: "#4ECDC4"}, {Hex: "#45B7D1"}, {Hex: "#FFA07A"}, {Hex: "#98D8C8"},
	}
}

// 基色、邻近色、三等分、互补色、三等分另一侧
var harmonyOffsets = [...]float64{0, 30, 120, 180, 240}

// RandomColor 均匀随机的 sRGB 颜色
func RandomColor(rnd *rand.Rand) colorful.Color {
	return colorful.Color{R: rnd.Float64(), G: rnd.Float64(), B: rnd.Float64()}
}

// HarmoniousPalette 随机一个基色，按色相偏移依次填充未锁定的格子，返回新切片
func HarmoniousPalette(slots []PaletteSlot, rnd *rand.Rand) []PaletteSlot {
	out := make([]PaletteSlot, len(slots))
	copy(out, slots)

	base := RandomColor(rnd)
	h, s, l := base.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	next := 0
	for i := range out {
		if out[i].Locked {
			continue
		}
		hue := math.Mod(h+harmonyOffsets[next%len(harmonyOffsets)], 360)
		out[i].Hex = strings.ToUpper(colorful.Hsl(hue, s, l).Clamped().Hex())
		next++
	}
	return out
}

// ExportPalette 导出为逗号分隔的 hex 列表
func ExportPalette(slots []PaletteSlot) string {
	hexes := make([]string, len(slots))
	for i, s := range slots {
		hexes[i] = s.Hex
	}
	return strings.Join(hexes, ", ")
}

// RelativeLuminance WCAG 相对亮度
func RelativeLuminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// TextColorFor 在该背景色上可读的文字颜色（黑或白）
func TextColorFor(c colorful.Color) string {
	if RelativeLuminance(c) > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}
