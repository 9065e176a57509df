package dto

import "color_api/util"

// ColorDetectReq GET /api/detect?value=
type ColorDetectReq struct {
	Value string `form:"value" json:"value"`
}

// ColorConvertReq 粘贴或输入的颜色字符串
type ColorConvertReq struct {
	Value string `json:"value" binding:"required"`
}

type PaletteHarmonyReq struct {
	Palette []util.PaletteSlot `json:"palette"`
	Seed    *int64             `json:"seed"` // 不传则随机
}

type PaletteExportReq struct {
	Palette []util.PaletteSlot `json:"palette" binding:"required,min=1"`
}

// SwatchReq GET /api/swatch?colors=#FF0000,#00FF00&w=&h=&type=png（也可以重复传 color=）
type SwatchReq struct {
	Colors []string
	Width  int
	Height int
	Type   string
	BG     string
}
