package service

import (
	"color_api/model/color/dto"
	"color_api/model/color/vo"
	"color_api/settings"
	"color_api/util"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// MaxSwatchColors 单张色卡最多的颜色数
const MaxSwatchColors = 64

type ColorService struct {
	History *History

	mu           sync.Mutex // 保护 rnd 和 defaultColor
	rnd          *rand.Rand
	defaultColor string
}

func NewColorService(cfg *settings.ColorConfig) *ColorService {
	return &ColorService{
		History:      NewHistory(cfg.HistorySize),
		defaultColor: cfg.DefaultColor,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Detect 识别格式；BGR 额外给出转换后的 rgb() 字符串
func (svc *ColorService) Detect(input string) vo.DetectResp {
	res := util.Classify(input)
	normalized := res.Input
	if res.Notation == util.NotationBGR {
		normalized = util.NormalizeBgrToRgb(res.Input)
	}
	zap.L().Debug("Detect color notation",
		zap.String("input", res.Input),
		zap.Stringer("notation", res.Notation))
	return vo.DetectResp{
		Input:      res.Input,
		Notation:   res.Notation,
		Recognized: res.Notation.Recognized(),
		Normalized: normalized,
	}
}

// Convert 解析颜色并输出所有格式，成功后写入历史记录
func (svc *ColorService) Convert(input string) (vo.ConvertResp, error) {
	parsed, err := util.ParseColor(input)
	if err != nil {
		zap.L().Info("util.ParseColor() rejected input", zap.String("input", input), zap.Error(err))
		return vo.ConvertResp{}, err
	}
	c := parsed.Color.Clamped()
	resp := vo.ConvertResp{
		Input:    parsed.Input,
		Notation: parsed.Notation,
		Hex:      strings.ToUpper(c.Hex()),
		Alpha:    parsed.Alpha,
		Formats:  util.AllFormats(c),
		Validation: vo.ValidationResp{
			ValidFormat: true,
			WebSafe:     util.IsWebSafe(c),
			SystemColor: util.IsSystemColor(c),
		},
		TextColor: util.TextColorFor(c),
	}
	svc.History.Add(resp.Hex, parsed.Notation.String())
	return resp, nil
}

// ApplyConfig 配置热更新时调用：更新默认颜色和历史记录条数
func (svc *ColorService) ApplyConfig(cfg *settings.ColorConfig) {
	if cfg == nil {
		return
	}
	svc.mu.Lock()
	svc.defaultColor = cfg.DefaultColor
	svc.mu.Unlock()
	svc.History.Resize(cfg.HistorySize)
	zap.L().Info("ColorService config reloaded",
		zap.String("default_color", cfg.DefaultColor),
		zap.Int("history_size", cfg.HistorySize))
}

// ConvertDefault 没有输入时使用配置的默认颜色
func (svc *ColorService) ConvertDefault() (vo.ConvertResp, error) {
	svc.mu.Lock()
	def := svc.defaultColor
	svc.mu.Unlock()
	if def == "" {
		return vo.ConvertResp{}, ErrNoDefaultColor
	}
	return svc.Convert(def)
}

func (svc *ColorService) WebSafePalette() []string {
	return util.WebSafeColors()
}

func (svc *ColorService) SystemPalette() []util.ColorCategory {
	return util.SystemColors
}

// HarmoniousPalette 重新生成未锁定的格子；palette 为空时从默认调色板开始
func (svc *ColorService) HarmoniousPalette(req dto.PaletteHarmonyReq) (vo.PaletteResp, error) {
	slots := req.Palette
	if len(slots) == 0 {
		slots = util.DefaultPalette()
	}
	for i, s := range slots {
		if !s.Locked {
			continue
		}
		// 锁定的格子原样保留，但必须是合法颜色
		if _, err := util.ParseColor(s.Hex); err != nil {
			return vo.PaletteResp{}, fmt.Errorf("slot %d: %w", i, err)
		}
	}

	var out []util.PaletteSlot
	if req.Seed != nil {
		out = util.HarmoniousPalette(slots, rand.New(rand.NewSource(*req.Seed)))
	} else {
		svc.mu.Lock()
		out = util.HarmoniousPalette(slots, svc.rnd)
		svc.mu.Unlock()
	}
	zap.L().Debug("HarmoniousPalette() generated", zap.String("palette", util.ExportPalette(out)))
	return vo.PaletteResp{Palette: out, Export: util.ExportPalette(out)}, nil
}

func (svc *ColorService) ExportPalette(req dto.PaletteExportReq) (vo.PaletteResp, error) {
	if len(req.Palette) == 0 {
		return vo.PaletteResp{}, ErrEmptyPalette
	}
	return vo.PaletteResp{Palette: req.Palette, Export: util.ExportPalette(req.Palette)}, nil
}

// Swatch 把一组颜色渲染成图片写入 w
func (svc *ColorService) Swatch(w io.Writer, req dto.SwatchReq) error {
	if len(req.Colors) == 0 {
		return ErrEmptyPalette
	}
	if len(req.Colors) > MaxSwatchColors {
		return fmt.Errorf("%w: %d > %d", ErrTooManyColors, len(req.Colors), MaxSwatchColors)
	}
	colors := make([]colorful.Color, 0, len(req.Colors))
	for _, s := range req.Colors {
		parsed, err := util.ParseColor(s)
		if err != nil {
			return err
		}
		colors = append(colors, parsed.Color)
	}
	return util.RenderSwatch(w, colors, req.Width, req.Height, req.Type, req.BG)
}
