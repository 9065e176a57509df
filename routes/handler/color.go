package handler

import (
	"color_api/model"
	"color_api/model/color/dto"
	"color_api/model/color/vo"
	"color_api/service"
	"color_api/util"
	"errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
)

// respondColorError 把解析错误映射成业务码
func respondColorError(c *gin.Context, err error, location string) {
	switch {
	case errors.Is(err, util.ErrUnrecognizedColor):
		model.Error(c, model.CodeUnrecognizedColor)
	case errors.Is(err, util.ErrInvalidColor):
		model.Error(c, model.CodeInvalidParam, err.Error())
	default:
		zap.L().Error(location, zap.Error(err))
		model.Error(c, model.CodeServerErr)
	}
}

// DetectColor 只做格式识别，识别不了也算成功，由 recognized 字段区分
func DetectColor(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ColorDetectReq
		if err := c.ShouldBindQuery(&req); err != nil {
			model.Error(c, model.CodeInvalidParam)
			return
		}
		model.Success(c, svc.Detect(req.Value))
	}
}

func ConvertColor(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ColorConvertReq
		if err := c.ShouldBindJSON(&req); err != nil {
			zap.L().Info("ConvertColor() ShouldBindJSON failed", zap.Error(err))
			model.Error(c, model.CodeInvalidParam)
			return
		}
		resp, err := svc.Convert(req.Value)
		if err != nil {
			respondColorError(c, err, "ConvertColor")
			return
		}
		model.Success(c, resp)
	}
}

// ConvertColorQuery GET /api/convert?value=，不带 value 时返回默认颜色
func ConvertColorQuery(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.Query("value")
		var (
			resp vo.ConvertResp
			err  error
		)
		if value == "" {
			resp, err = svc.ConvertDefault()
		} else {
			resp, err = svc.Convert(value)
		}
		if err != nil {
			respondColorError(c, err, "ConvertColorQuery")
			return
		}
		model.Success(c, resp)
	}
}

func GetFormats() gin.HandlerFunc {
	return func(c *gin.Context) {
		model.Success(c, util.FormatInfos)
	}
}

func GetHistory(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		model.Success(c, svc.History.List())
	}
}

func ClearHistory(svc *service.ColorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.History.Clear()
		zap.L().Info("history cleared")
		model.SuccessEmpty(c)
	}
}

// statusOf 图片接口出错时返回 JSON，需要真实 HTTP 状态码
func statusOf(err error) int {
	if errors.Is(err, util.ErrUnrecognizedColor) || errors.Is(err, util.ErrInvalidColor) ||
		errors.Is(err, util.ErrUnsupportedImageType) || errors.Is(err, service.ErrEmptyPalette) ||
		errors.Is(err, service.ErrTooManyColors) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
