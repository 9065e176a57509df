package routes

import (
	"color_api/logger"
	"color_api/model"
	"color_api/routes/handler"
	"color_api/service"
	"color_api/settings"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"os"
)

// Setup 注册接口
func Setup(svc *service.ColorService) *gin.Engine {
	if settings.Config.AppSettings != nil && settings.Config.AppSettings.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logger.GinLogger(), logger.GinRecovery(true))

	// 老版本的单页转换器，只有这一个静态路由
	if static := settings.Config.StaticConfig; static != nil {
		router.GET(static.Route, staticPageHandler(static.Page))
	}

	api := router.Group("/api")
	{
		api.GET("/detect", handler.DetectColor(svc))
		api.GET("/convert", handler.ConvertColorQuery(svc))
		api.POST("/convert", handler.ConvertColor(svc))
		api.GET("/formats", handler.GetFormats())

		api.GET("/history", handler.GetHistory(svc))
		api.DELETE("/history", handler.ClearHistory(svc))

		palette := api.Group("/palette")
		palette.GET("/websafe", handler.GetWebSafePalette(svc))
		palette.GET("/system", handler.GetSystemPalette(svc))
		palette.POST("/harmonious", handler.GenerateHarmoniousPalette(svc))
		palette.POST("/export", handler.ExportPalette(svc))

		api.GET("/swatch", handler.GetSwatch(svc))
	}

	router.NoRoute(func(c *gin.Context) {
		model.Abort(c, http.StatusNotFound, model.CodeNotFound)
	})
	return router
}

// staticPageHandler 页面文件不存在时返回 404
func staticPageHandler(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := os.Stat(page); err != nil {
			zap.L().Error("static page not available", zap.String("page", page), zap.Error(err))
			model.Abort(c, http.StatusNotFound, model.CodeNotFound)
			return
		}
		c.File(page)
	}
}
