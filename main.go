package main

import (
	"color_api/logger"
	"color_api/routes"
	"color_api/service"
	"color_api/settings"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// 1.加载配置
	if err := settings.Init(); err != nil {
		fmt.Printf("settings.Init() failed, err: %s\n", err.Error())
		os.Exit(1) // 立刻退出程序，避免后续空指针
	}
	// 2.初始化日志
	if err := logger.Init(settings.Config.LogConfig); err != nil {
		fmt.Printf("logger.Init() failed, err: %s\n", err.Error())
		os.Exit(1)
	}
	defer zap.L().Sync() // nolint: errcheck
	zap.L().Debug("init logger success...")

	// 3.注册路由
	svc := service.NewColorService(settings.Config.ColorConfig)
	settings.OnChange(func(c *settings.AppConfig) {
		svc.ApplyConfig(c.ColorConfig)
	})
	r := routes.Setup(svc)
	addr := fmt.Sprintf("%s:%d", settings.Config.AppSettings.Host, settings.Config.AppSettings.Port)
	zap.L().Info("Starting HTTP server",
		zap.String("address", addr),
		zap.String("version", settings.Config.AppSettings.Version))

	// 4.优雅关机
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("listen failed", zap.Error(err))
		}
	}()
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	zap.L().Info("Shutdown Server ...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Fatal("Server Shutdown", zap.Error(err))
	}
	zap.L().Info("Server exiting")
}
