package util

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSafeColors(t *testing.T) {
	colors := WebSafeColors()
	require.Len(t, colors, 216)
	assert.Equal(t, "#000000", colors[0])
	assert.Equal(t, "#000033", colors[1])
	assert.Equal(t, "#FFFFFF", colors[215])

	seen := map[string]bool{}
	for _, hex := range colors {
		assert.False(t, seen[hex], "duplicate %s", hex)
		seen[hex] = true
		assert.True(t, IsWebSafe(mustHex(t, hex)), hex)
	}
}

func TestIsWebSafe(t *testing.T) {
	assert.True(t, IsWebSafe(mustHex(t, "#336699")))
	assert.True(t, IsWebSafe(mustHex(t, "#ffffff")))
	assert.False(t, IsWebSafe(mustHex(t, "#2563eb")))
	assert.False(t, IsWebSafe(mustHex(t, "#330000").BlendRgb(mustHex(t, "#000000"), 0.1)))
}

func TestIsSystemColor(t *testing.T) {
	assert.True(t, IsSystemColor(mustHex(t, "#FFA500")))
	assert.True(t, IsSystemColor(mustHex(t, "#008000")))
	assert.False(t, IsSystemColor(mustHex(t, "#2563EB")))
}

func TestHarmoniousPalette(t *testing.T) {
	slots := DefaultPalette()
	slots[1].Locked = true
	slots[3].Locked = true
	before := append([]PaletteSlot(nil), slots...)

	out := HarmoniousPalette(slots, rand.New(rand.NewSource(42)))
	require.Len(t, out, len(slots))
	assert.Equal(t, before, slots, "input must not be modified")

	assert.Equal(t, slots[1], out[1])
	assert.Equal(t, slots[3], out[3])
	for _, i := range []int{0, 2, 4} {
		assert.False(t, out[i].Locked)
		assert.Equal(t, NotationHex, Detect(out[i].Hex))
		assert.NotEmpty(t, NormalizeColor(out[i].Hex))
	}

	again := HarmoniousPalette(slots, rand.New(rand.NewSource(42)))
	assert.Equal(t, out, again, "same seed, same palette")
}

func TestHarmoniousPalette_AllLocked(t *testing.T) {
	slots := DefaultPalette()
	for i := range slots {
		slots[i].Locked = true
	}
	assert.Equal(t, slots, HarmoniousPalette(slots, rand.New(rand.NewSource(1))))
}

func TestExportPalette(t *testing.T) {
	assert.Equal(t, "#FF6B6B, #4ECDC4, #45B7D1, #FFA07A, #98D8C8", ExportPalette(DefaultPalette()))
	assert.Equal(t, "", ExportPalette(nil))
}

func TestTextColorFor(t *testing.T) {
	assert.Equal(t, "#000000", TextColorFor(mustHex(t, "#ffffff")))
	assert.Equal(t, "#000000", TextColorFor(mustHex(t, "#ffff00")))
	assert.Equal(t, "#FFFFFF", TextColorFor(mustHex(t, "#000000")))
	assert.Equal(t, "#FFFFFF", TextColorFor(mustHex(t, "#0000ff")))
}

func TestSystemColors_Parse(t *testing.T) {
	for _, cat := range SystemColors {
		assert.NotEmpty(t, cat.Colors, cat.Category)
		for _, nc := range cat.Colors {
			assert.Equal(t, nc.Hex, NormalizeColor(nc.Hex), nc.Name)
		}
	}
}
