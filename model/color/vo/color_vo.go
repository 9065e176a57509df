package vo

import (
	"color_api/util"
	"time"
)

type DetectResp struct {
	Input      string             `json:"input"`
	Notation   util.ColorNotation `json:"notation"`
	Recognized bool               `json:"recognized"`
	Normalized string             `json:"normalized"` // BGR 时是转换后的 rgb()，其他格式与 input 相同
}

type ValidationResp struct {
	ValidFormat bool `json:"validFormat"`
	WebSafe     bool `json:"webSafe"`
	SystemColor bool `json:"systemColor"`
}

type ConvertResp struct {
	Input      string                `json:"input"`
	Notation   util.ColorNotation    `json:"notation"`
	Hex        string                `json:"hex"`
	Alpha      float64               `json:"alpha"`
	Formats    []util.FormattedValue `json:"formats"`
	Validation ValidationResp        `json:"validation"`
	TextColor  string                `json:"textColor"`
}

type HistoryItemResp struct {
	ID        string    `json:"id"`
	Hex       string    `json:"hex"`
	Format    string    `json:"format,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	TimeAgo   string    `json:"timeAgo"`
}

type PaletteResp struct {
	Palette []util.PaletteSlot `json:"palette"`
	Export  string             `json:"export"`
}
