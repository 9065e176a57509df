package handler

import (
	"bytes"
	"color_api/model"
	"color_api/model/color/dto"
	"color_api/service"
	"fmt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"strconv"
	"strings"
)

func GetWebSafePalette(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		model.Success(c, svc.WebSafePalette())
	}
}

func GetSystemPalette(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		model.Success(c, svc.SystemPalette())
	}
}

// GenerateHarmoniousPalette 请求体可以为空，此时从默认调色板生成
func GenerateHarmoniousPalette(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PaletteHarmonyReq
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				zap.L().Info("GenerateHarmoniousPalette() ShouldBindJSON failed", zap.Error(err))
				model.Error(c, model.CodeInvalidParam)
				return
			}
		}
		resp, err := svc.HarmoniousPalette(req)
		if err != nil {
			respondColorError(c, err, "HarmoniousPalette")
			return
		}
		model.Success(c, resp)
	}
}

func ExportPalette(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PaletteExportReq
		if err := c.ShouldBindJSON(&req); err != nil {
			model.Error(c, model.CodeInvalidParam)
			return
		}
		resp, err := svc.ExportPalette(req)
		if err != nil {
			model.Error(c, model.CodeInvalidParam, err.Error())
			return
		}
		model.Success(c, resp)
	}
}

// parseQueryInt 解析输入url中的参数，缺省为 0
func parseQueryInt(c *gin.Context, key string) (int, error) {
	valStr := c.DefaultQuery(key, "")
	if valStr == "" {
		return 0, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return val, nil
}

// getContentType 根据图片类型，获取响应的 Content-Type
func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case "", "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// swatchColors 读取 colors=red,rgb(0,255,0) 逗号列表，兼容重复的 color= 参数。
// 括号里的逗号不算分隔符
func swatchColors(c *gin.Context) []string {
	var colors []string
	for _, raw := range c.QueryArray("colors") {
		colors = append(colors, splitColorList(raw)...)
	}
	for _, s := range c.QueryArray("color") {
		if s = strings.TrimSpace(s); s != "" {
			colors = append(colors, s)
		}
	}
	return colors
}

func splitColorList(raw string) []string {
	var (
		out   []string
		depth int
		start int
	)
	flush := func(end int) {
		if s := strings.TrimSpace(raw[start:end]); s != "" {
			out = append(out, s)
		}
	}
	for i, r := range raw {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(raw))
	return out
}

// GetSwatch GET /api/swatch?colors=%23FF0000,rgb(0,255,0)&w=300&h=100&type=png&bg=white
func GetSwatch(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			req dto.SwatchReq
			err error
		)
		req.Colors = swatchColors(c)
		req.Type = c.DefaultQuery("type", "png")
		req.BG = c.DefaultQuery("bg", "")
		if req.Width, err = parseQueryInt(c, "w"); err != nil {
			model.Abort(c, 400, model.CodeInvalidParam, err.Error())
			return
		}
		if req.Height, err = parseQueryInt(c, "h"); err != nil {
			model.Abort(c, 400, model.CodeInvalidParam, err.Error())
			return
		}

		zap.L().Info("Received swatch params",
			zap.Strings("colors", req.Colors),
			zap.Int("width", req.Width),
			zap.Int("height", req.Height),
			zap.String("type", req.Type),
		)
		var buf bytes.Buffer
		if err = svc.Swatch(&buf, req); err != nil {
			status := statusOf(err)
			if status >= 500 {
				zap.L().Error("svc.Swatch() failed", zap.Error(err))
			}
			model.Abort(c, status, status, err.Error())
			return
		}
		c.Data(200, getContentType(req.Type), buf.Bytes())
	}
}
