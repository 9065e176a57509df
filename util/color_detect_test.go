package util

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorNotation
	}{
		// hex
		{"#fff", NotationHex},
		{"#FFFF", NotationHex},
		{"#2563EB", NotationHex},
		{"#2563eb80", NotationHex},
		{"#12345", NotationHex},
		{"#1234567", NotationHex},
		{"  #abc  ", NotationHex},
		{"#ff", NotationUnrecognized},
		{"#ggg", NotationUnrecognized},
		{"#123456789", NotationUnrecognized},
		{"fff", NotationUnrecognized},

		// rgb / bgr
		{"rgb(1,2,3)", NotationRGB},
		{"rgb( 255 , 0 ,  128 )", NotationRGB},
		{"RGB(1,2,3)", NotationRGB},
		{"Rgb(1,2,3)", NotationRGB},
		{"rgb(999,999,999)", NotationRGB},
		{"rgb(1,\u00a02,3)", NotationRGB},
		{"rgb(\v1,2,3\u2003)", NotationRGB},
		{"rgb(1,2)", NotationUnrecognized},
		{"rgb(1,2,3) extra", NotationUnrecognized},
		{"rgb(1.5,2,3)", NotationUnrecognized},
		{"bgr(10, 20, 30)", NotationBGR},
		{"BGR(10,20,30)", NotationBGR},
		{"bgr(1,2,3,4)", NotationUnrecognized},

		// rgba
		{"rgba(255, 0, 0, 0.5)", NotationRGBA},
		{"rgba(255,0,0,1)", NotationRGBA},
		{"RGBA(0,0,0,.25)", NotationRGBA},
		{"rgba(1,2,3)", NotationUnrecognized},

		// hsl / hsla / hsv
		{"hsl(120, 50%, 50%)", NotationHSL},
		{"HSL(0,0%,0%)", NotationHSL},
		{"hsl(120, 50, 50)", NotationUnrecognized},
		{"hsla(120, 50%, 50%, 0.3)", NotationHSLA},
		{"hsv(200, 10%, 90%)", NotationHSV},
		{"hsv(200, 10, 90)", NotationUnrecognized},

		// cmyk
		{"cmyk(0%, 50%, 100%, 10%)", NotationCMYK},
		{"CMYK(0%,0%,0%,100%)", NotationCMYK},
		{"cmyk(0, 50, 100, 10)", NotationUnrecognized},

		// opengl
		{"(0.145, 0.388, 0.922)", NotationOpenGLFloat},
		{"(0.5, 0.5, 0.5)", NotationOpenGLFloat},
		{"(1, 0, 1)", NotationOpenGLFloat},
		{"(.5, .25, 1.0)", NotationOpenGLFloat},
		{"(0.5,\u00a00.5,\ufeff0.5)", NotationOpenGLFloat},
		{"(0.5, 0.5)", NotationUnrecognized},

		// css names
		{"red", NotationCssName},
		{"RED", NotationCssName},
		{"Grey", NotationCssName},
		{"gray", NotationCssName},
		{"reddish", NotationUnrecognized},
		{"lime", NotationUnrecognized},
		{"light blue", NotationUnrecognized},

		// blank
		{"", NotationUnrecognized},
		{"   ", NotationUnrecognized},
		{"\t\n", NotationUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.input), "input: %q", tt.input)
		})
	}
}

func TestDetect_BareTripleIsNeverRGB(t *testing.T) {
	assert.Equal(t, NotationOpenGLFloat, Detect("(0.5, 0.5, 0.5)"))
	assert.Equal(t, NotationRGB, Detect("rgb(0, 0, 0)"))
	// 带前缀但形状不对时也不能退化成 OpenGL
	assert.Equal(t, NotationUnrecognized, Detect("rgb(0.5, 0.5, 0.5)"))
}

func TestDetect_RulesOrder(t *testing.T) {
	var order []ColorNotation
	for _, rule := range notationRules {
		order = append(order, rule.notation)
	}
	assert.Equal(t, []ColorNotation{
		NotationHex, NotationRGB, NotationBGR, NotationRGBA, NotationHSL, NotationHSLA,
		NotationHSV, NotationCMYK, NotationOpenGLFloat, NotationCssName,
	}, order)
}

func TestClassify_TrimsInput(t *testing.T) {
	input := "  bgr(1, 2, 3)\n"
	res := Classify(input)
	assert.Equal(t, "bgr(1, 2, 3)", res.Input)
	assert.Equal(t, NotationBGR, res.Notation)
	assert.Equal(t, "  bgr(1, 2, 3)\n", input)
}

func TestDetect_Concurrent(t *testing.T) {
	inputs := []string{"#fff", "rgb(1,2,3)", "bgr(1,2,3)", "(0.1, 0.2, 0.3)", "red", "nope"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s := inputs[j%len(inputs)]
				if Detect(s) != Classify(s).Notation {
					t.Errorf("inconsistent result for %q", s)
				}
			}
		}()
	}
	wg.Wait()
}

func TestNormalizeBgrToRgb(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"bgr(10, 20, 30)", "rgb(30, 20, 10)"},
		{"BGR(10,20,30)", "rgb(30, 20, 10)"},
		{"  bgr( 0 , 128 , 255 )  ", "rgb(255, 128, 0)"},
		{"bgr(1,\u00a02,\u30003)", "rgb(3, 2, 1)"},
		{"bgr(999, 0, 1)", "rgb(1, 0, 999)"},
		{"not bgr", "not bgr"},
		{"rgb(1, 2, 3)", "rgb(1, 2, 3)"},
		{"bgr(1, 2, 3, 4)", "bgr(1, 2, 3, 4)"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeBgrToRgb(tt.input), "input: %q", tt.input)
	}
}

func TestNormalizeBgrToRgb_NoDoubleSwap(t *testing.T) {
	once := NormalizeBgrToRgb("bgr(10, 20, 30)")
	twice := NormalizeBgrToRgb(once)
	assert.Equal(t, "rgb(30, 20, 10)", once)
	// 第二次看到的是 RGB，不会再换回去
	assert.Equal(t, once, twice)
	assert.Equal(t, NotationRGB, Detect(twice))
}

func TestDetectThenNormalize(t *testing.T) {
	input := "bgr(10, 20, 30)"
	require.Equal(t, NotationBGR, Detect(input))
	assert.Equal(t, "rgb(30, 20, 10)", NormalizeBgrToRgb(input))
}

func TestColorNotation_JSON(t *testing.T) {
	data, err := json.Marshal(DetectionResult{Input: "red", Notation: NotationCssName})
	require.NoError(t, err)
	assert.JSONEq(t, `{"input":"red","notation":"CSS Name"}`, string(data))

	var res DetectionResult
	require.NoError(t, json.Unmarshal([]byte(`{"input":"(0,0,0)","notation":"OpenGL"}`), &res))
	assert.Equal(t, NotationOpenGLFloat, res.Notation)

	assert.Error(t, json.Unmarshal([]byte(`{"notation":"XYZ"}`), &res))
	assert.Equal(t, "Unrecognized", ColorNotation(99).String())
	assert.False(t, NotationUnrecognized.Recognized())
	assert.True(t, NotationHex.Recognized())
}

func TestChannelTriple_Reversed(t *testing.T) {
	tr := ChannelTriple{10, 20, 30}
	assert.Equal(t, ChannelTriple{30, 20, 10}, tr.Reversed())
	assert.Equal(t, tr, tr.Reversed().Reversed())
}
