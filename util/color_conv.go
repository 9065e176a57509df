package util

import (
	"errors"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrUnrecognizedColor Detect 无法识别的格式，不应该交给颜色库
	ErrUnrecognizedColor = errors.New("unrecognized color notation")
	// ErrInvalidColor 格式识别了，但数值不合法（越界、hex 位数不对等）
	ErrInvalidColor = errors.New("invalid color")
)

// ParsedColor 识别并解析之后的颜色
type ParsedColor struct {
	Input    string
	Notation ColorNotation
	Color    colorful.Color
	Alpha    float64
}

// ParseColor 识别格式 -> BGR 转 RGB -> 解析成 colorful.Color。
// 数值范围的校验都放在这里，Detect 只管形状
func ParseColor(input string) (ParsedColor, error) {
	res := Classify(input)
	parsed := ParsedColor{Input: res.Input, Notation: res.Notation, Alpha: 1}

	var err error
	switch res.Notation {
	case NotationHex:
		parsed.Color, parsed.Alpha, err = parseHex(res.Input)
	case NotationRGB:
		parsed.Color, err = parseRGB(res.Input)
	case NotationBGR:
		// 颜色库只认 RGB，先换通道顺序
		parsed.Color, err = parseRGB(NormalizeBgrToRgb(res.Input))
	case NotationRGBA:
		parsed.Color, parsed.Alpha, err = parseRGBA(res.Input)
	case NotationHSL:
		parsed.Color, err = parseHueForm(hslRegex, res.Input, colorful.Hsl)
	case NotationHSLA:
		parsed.Color, parsed.Alpha, err = parseHSLA(res.Input)
	case NotationHSV:
		parsed.Color, err = parseHueForm(hsvRegex, res.Input, colorful.Hsv)
	case NotationCMYK:
		parsed.Color, err = parseCMYK(res.Input)
	case NotationOpenGLFloat:
		parsed.Color, err = parseOpenGL(res.Input)
	case NotationCssName:
		parsed.Color, err = parseCssName(res.Input)
	default:
		return parsed, fmt.Errorf("%w: %q", ErrUnrecognizedColor, res.Input)
	}
	return parsed, err
}

// NormalizeColor 统一将各种颜色格式转换为 #RRGGBB 格式，解析失败返回空字符串
func NormalizeColor(input string) string {
	parsed, err := ParseColor(input)
	if err != nil {
		return ""
	}
	return strings.ToUpper(parsed.Color.Clamped().Hex())
}

func invalid(input, format string, args ...any) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidColor, input, fmt.Sprintf(format, args...))
}

func parseHex(input string) (colorful.Color, float64, error) {
	hex := strings.TrimPrefix(input, "#")
	alpha := 1.0
	switch len(hex) {
	case 3: // RGB -> RRGGBB
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 4: // RGBA -> RRGGBB，A 单独返回
		a, _ := strconv.ParseUint(string([]byte{hex[3], hex[3]}), 16, 8)
		alpha = float64(a) / 255
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8: // RRGGBBAA
		a, _ := strconv.ParseUint(hex[6:], 16, 8)
		alpha = float64(a) / 255
		hex = hex[:6]
	default:
		return colorful.Color{}, 0, invalid(input, "hex needs 3, 4, 6 or 8 digits, got %d", len(hex))
	}
	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, 0, invalid(input, "%v", err)
	}
	return c, alpha, nil
}

// parseChannels 把正则捕获到的整数通道转成数值，并检查上限
func parseChannels(input string, groups []string, limit int) ([]float64, error) {
	out := make([]float64, len(groups))
	for i, g := range groups {
		v, err := strconv.Atoi(g)
		if err != nil {
			return nil, invalid(input, "channel %d: %v", i+1, err)
		}
		if v < 0 || v > limit {
			return nil, invalid(input, "channel %d out of range 0-%d: %d", i+1, limit, v)
		}
		out[i] = float64(v)
	}
	return out, nil
}

func parseAlpha(input, s string) (float64, error) {
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid(input, "alpha: %v", err)
	}
	if a < 0 || a > 1 {
		return 0, invalid(input, "alpha out of range 0-1: %v", a)
	}
	return a, nil
}

func tripleToColor(t ChannelTriple) colorful.Color {
	return colorful.Color{R: t[0] / 255, G: t[1] / 255, B: t[2] / 255}
}

func parseRGB(input string) (colorful.Color, error) {
	m := rgbRegex.FindStringSubmatch(input)
	if m == nil {
		return colorful.Color{}, invalid(input, "not an rgb() triple")
	}
	ch, err := parseChannels(input, m[1:4], 255)
	if err != nil {
		return colorful.Color{}, err
	}
	return tripleToColor(ChannelTriple{ch[0], ch[1], ch[2]}), nil
}

func parseRGBA(input string) (colorful.Color, float64, error) {
	m := rgbaRegex.FindStringSubmatch(input)
	if m == nil {
		return colorful.Color{}, 0, invalid(input, "not an rgba() quadruple")
	}
	ch, err := parseChannels(input, m[1:4], 255)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	a, err := parseAlpha(input, m[4])
	if err != nil {
		return colorful.Color{}, 0, err
	}
	return tripleToColor(ChannelTriple{ch[0], ch[1], ch[2]}), a, nil
}

// hueChannels hsl()/hsv() 共用：色相 0-360，后两个是百分比
func hueChannels(input string, groups []string) (h, a, b float64, err error) {
	hue, err := parseChannels(input, groups[:1], 360)
	if err != nil {
		return 0, 0, 0, err
	}
	pct, err := parseChannels(input, groups[1:3], 100)
	if err != nil {
		return 0, 0, 0, err
	}
	return hue[0], pct[0] / 100, pct[1] / 100, nil
}

func parseHueForm(re *regexp.Regexp, input string, build func(h, s, x float64) colorful.Color) (colorful.Color, error) {
	m := re.FindStringSubmatch(input)
	if m == nil {
		return colorful.Color{}, invalid(input, "unexpected shape")
	}
	h, s, x, err := hueChannels(input, m[1:4])
	if err != nil {
		return colorful.Color{}, err
	}
	return build(h, s, x), nil
}

func parseHSLA(input string) (colorful.Color, float64, error) {
	m := hslaRegex.FindStringSubmatch(input)
	if m == nil {
		return colorful.Color{}, 0, invalid(input, "not an hsla() quadruple")
	}
	h, sat, l, err := hueChannels(input, m[1:4])
	if err != nil {
		return colorful.Color{}, 0, err
	}
	a, err := parseAlpha(input, m[4])
	if err != nil {
		return colorful.Color{}, 0, err
	}
	return colorful.Hsl(h, sat, l), a, nil
}

func parseCMYK(input string) (colorful.Color, error) {
	m := cmykRegex.FindStringSubmatch(input)
	if m == nil {
		return colorful.Color{}, invalid(input, "not a cmyk() quadruple")
	}
	v, err := parseChannels(input, m[1:5], 100)
	if err != nil {
		return colorful.Color{}, err
	}
	c, mg, y, k := v[0]/100, v[1]/100, v[2]/100, v[3]/100
	return colorful.Color{
		R: (1 - c) * (1 - k),
		G: (1 - mg) * (1 - k),
		B: (1 - y) * (1 - k),
	}, nil
}

func parseOpenGL(input string) (colorful.Color, error) {
	m := openGLRegex.FindStringSubmatch(input)
	if m == nil {
		return colorful.Color{}, invalid(input, "not a float triple")
	}
	var t ChannelTriple
	for i, g := range m[1:4] {
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return colorful.Color{}, invalid(input, "channel %d: %v", i+1, err)
		}
		if v < 0 || v > 1 {
			return colorful.Color{}, invalid(input, "channel %d out of range 0-1: %v", i+1, v)
		}
		t[i] = v
	}
	return colorful.Color{R: t[0], G: t[1], B: t[2]}, nil
}

func parseCssName(input string) (colorful.Color, error) {
	rgba, ok := colornames.Map[strings.ToLower(input)]
	if !ok {
		return colorful.Color{}, invalid(input, "unknown color name")
	}
	c, _ := colorful.MakeColor(rgba)
	return c, nil
}
