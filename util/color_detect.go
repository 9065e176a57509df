package util

import (
	"fmt"
	"regexp"
	"strings"
)

// ColorNotation 颜色字符串的书写格式
type ColorNotation int

const (
	NotationUnrecognized ColorNotation = iota
	NotationHex
	NotationRGB
	NotationBGR
	NotationRGBA
	NotationHSL
	NotationHSLA
	NotationHSV
	NotationCMYK
	NotationOpenGLFloat
	NotationCssName
)

var notationLabels = map[ColorNotation]string{
	NotationUnrecognized: "Unrecognized",
	NotationHex:          "HEX",
	NotationRGB:          "RGB",
	NotationBGR:          "BGR",
	NotationRGBA:         "RGBA",
	NotationHSL:          "HSL",
	NotationHSLA:         "HSLA",
	NotationHSV:          "HSV",
	NotationCMYK:         "CMYK",
	NotationOpenGLFloat:  "OpenGL",
	NotationCssName:      "CSS Name",
}

func (n ColorNotation) String() string {
	if label, ok := notationLabels[n]; ok {
		return label
	}
	return notationLabels[NotationUnrecognized]
}

// MarshalText JSON 里直接输出格式名
func (n ColorNotation) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *ColorNotation) UnmarshalText(text []byte) error {
	for notation, label := range notationLabels {
		if label == string(text) {
			*n = notation
			return nil
		}
	}
	return fmt.Errorf("unknown color notation %q", text)
}

// Recognized 调用方只在识别成功时才继续交给颜色库处理
func (n ColorNotation) Recognized() bool {
	return n != NotationUnrecognized
}

// DetectionResult 一次识别的结果（去掉首尾空白后的原串 + 格式）
type DetectionResult struct {
	Input    string        `json:"input"`
	Notation ColorNotation `json:"notation"`
}

// ChannelTriple 三个通道值，顺序由所属格式决定（RGB 或 BGR）
type ChannelTriple [3]float64

// Reversed 交换第一、三个通道，BGR <-> RGB
func (t ChannelTriple) Reversed() ChannelTriple {
	return ChannelTriple{t[2], t[1], t[0]}
}

// 基础 CSS 颜色名，只识别这 14 个
var cssColorNames = map[string]struct{}{
	"red": {}, "green": {}, "blue": {}, "white": {}, "black": {}, "yellow": {}, "cyan": {},
	"magenta": {}, "orange": {}, "purple": {}, "pink": {}, "brown": {}, "gray": {}, "grey": {},
}

var (
	hexRegex    = regexp.MustCompile(`^#[0-9A-Fa-f]{3,8}$`)
	rgbRegex    = mustColorRegex(`(?i)^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	bgrRegex    = mustColorRegex(`(?i)^bgr\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaRegex   = mustColorRegex(`(?i)^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*([\d.]+)\s*\)$`)
	hslRegex    = mustColorRegex(`(?i)^hsl\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)
	hslaRegex   = mustColorRegex(`(?i)^hsla\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*,\s*([\d.]+)\s*\)$`)
	hsvRegex    = mustColorRegex(`(?i)^hsv\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)
	cmykRegex   = mustColorRegex(`(?i)^cmyk\(\s*(\d+)%\s*,\s*(\d+)%\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)
	openGLRegex = mustColorRegex(`^\(\s*([01]?\.?\d*)\s*,\s*([01]?\.?\d*)\s*,\s*([01]?\.?\d*)\s*\)$`)
	alphaRegex  = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// colorSpace 与浏览器正则的 \s 一致：除 ASCII 空白外还包括 \v、NBSP 等 Unicode 空白。
// Go 的 \s 只认 ASCII
const colorSpace = `[\t\n\v\f\r \p{Zs}\x{FEFF}\x{2028}\x{2029}]`

func mustColorRegex(pattern string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(pattern, `\s`, colorSpace))
}

// notationRule 按顺序匹配，第一个命中的生效。
// OpenGL 的裸三元组规则比较宽松，必须排在所有带前缀的数值格式之后
type notationRule struct {
	notation ColorNotation
	match    func(string) bool
}

var notationRules = []notationRule{
	{NotationHex, hexRegex.MatchString},
	{NotationRGB, rgbRegex.MatchString},
	{NotationBGR, bgrRegex.MatchString},
	{NotationRGBA, rgbaRegex.MatchString},
	{NotationHSL, hslRegex.MatchString},
	{NotationHSLA, hslaRegex.MatchString},
	{NotationHSV, hsvRegex.MatchString},
	{NotationCMYK, cmykRegex.MatchString},
	{NotationOpenGLFloat, openGLRegex.MatchString},
	{NotationCssName, isCssColorName},
}

func isCssColorName(s string) bool {
	if !alphaRegex.MatchString(s) {
		return false
	}
	_, ok := cssColorNames[strings.ToLower(s)]
	return ok
}

// Detect 判断输入字符串属于哪种颜色格式，识别不了返回 NotationUnrecognized，不会报错。
// 只看字符串形状，不检查数值范围（rgb(999,999,999) 也算 RGB）
func Detect(input string) ColorNotation {
	return Classify(input).Notation
}

// Classify 同 Detect，额外带回去掉空白后的输入
func Classify(input string) DetectionResult {
	trimmed := strings.TrimSpace(input)
	for _, rule := range notationRules {
		if rule.match(trimmed) {
			return DetectionResult{Input: trimmed, Notation: rule.notation}
		}
	}
	return DetectionResult{Input: trimmed, Notation: NotationUnrecognized}
}

// NormalizeBgrToRgb 把 bgr(B, G, R) 改写成 rgb(R, G, B)，交给只认 RGB 的颜色库。
// 不是 BGR 形状的输入原样返回，这里不报错：调用前应当已经用 Detect 判断过
func NormalizeBgrToRgb(input string) string {
	matches := bgrRegex.FindStringSubmatch(strings.TrimSpace(input))
	if len(matches) != 4 {
		return input
	}
	b, g, r := matches[1], matches[2], matches[3]
	return "rgb(" + r + ", " + g + ", " + b + ")"
}
