package main

import (
	"color_api/logger"
	"color_api/routes"
	"color_api/service"
	"color_api/settings"
	"context"
	"encoding/json"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/tencentyun/scf-go-lib/cloudfunction"
	"github.com/tencentyun/scf-go-lib/events" // 这里才有 APIGatewayRequest
	"go.uber.org/zap"
	"os"
)

var (
	r   *gin.Engine
	svc *service.ColorService
)

func init() {
	// 1.加载配置
	if err := settings.Init(); err != nil {
		panic(fmt.Sprintf("settings.Init() failed: %s", err))
	}

	// 2.初始化日志
	if err := logger.Init(settings.Config.LogConfig); err != nil {
		panic(fmt.Sprintf("logger.Init() failed: %s", err))
	}
	zap.L().Info("Logger init success")

	// 3.注册路由
	svc = service.NewColorService(settings.Config.ColorConfig)
	r = routes.Setup(svc)

	// 4.统一监听端口，启动 Gin 服务
	port := os.Getenv("PORT") // SCF 会自动注入 PORT 环境变量（一般是 9000）
	if port == "" {
		port = "9000"
	}
	go func() {
		if err := r.Run(":" + port); err != nil {
			zap.L().Fatal("server start failed", zap.Error(err))
		}
	}()
}

// Handler 是云函数的入口。Web 函数只走 Gin 路由，这里只是占位
func Handler(ctx context.Context, evt json.RawMessage) (interface{}, error) {
	return events.APIGatewayResponse{StatusCode: 200}, nil
}

func main() {
	cloudfunction.Start(Handler)
}
