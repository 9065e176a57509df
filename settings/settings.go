package settings

import (
	"fmt"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"strings"
	"sync"
)

var Config = new(AppConfig)

var (
	mu        sync.Mutex
	listeners []func(*AppConfig)
)

// ConfigFile 本地模式下读取的配置文件
const ConfigFile = "conf/config.yaml"

type AppConfig struct {
	AppSettings  *AppSettings  `mapstructure:"app"`
	LogConfig    *LogConfig    `mapstructure:"log"`
	StaticConfig *StaticConfig `mapstructure:"static"`
	ColorConfig  *ColorConfig  `mapstructure:"color"`
}

type AppSettings struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Name    string `mapstructure:"name"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// StaticConfig 静态页面（老版本的单页转换器）
type StaticConfig struct {
	Route string `mapstructure:"route"`
	Page  string `mapstructure:"page"`
}

type ColorConfig struct {
	HistorySize  int    `mapstructure:"history_size"`
	DefaultColor string `mapstructure:"default_color"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.version", "v0.1.0")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.name", "color_api")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("static.route", "/static-color-converter.html")
	v.SetDefault("static.page", "static-color-converter.html")
	v.SetDefault("color.history_size", 10)
	v.SetDefault("color.default_color", "#2563EB")
}

// 云函数模式下的环境变量 -> 配置项
var envBindings = map[string]string{
	"app.host":            "HOST",
	"app.port":            "PORT",
	"app.version":         "VERSION",
	"app.mode":            "MODE",
	"app.name":            "NAME",
	"log.level":           "LOG_LEVEL",
	"log.filename":        "LOG_FILENAME",
	"log.compress":        "LOG_COMPRESS",
	"static.route":        "STATIC_ROUTE",
	"static.page":         "STATIC_PAGE",
	"color.history_size":  "HISTORY_SIZE",
	"color.default_color": "DEFAULT_COLOR",
}

func localInit(v *viper.Viper) (err error) {
	v.SetConfigFile(ConfigFile)
	if err = v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", ConfigFile, err)
	}
	if err = v.Unmarshal(Config); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// 热更新（仅本地用）
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Printf("Config file changed: %s\n", e.Name)
		if err := reload(v); err != nil {
			fmt.Printf("reload config err: %v\n", err)
		}
	})
	return nil
}

// OnChange 注册配置热更新后的回调。
// 静态路由、端口、日志在启动时就固定了，改了要重启才生效
func OnChange(fn func(*AppConfig)) {
	mu.Lock()
	listeners = append(listeners, fn)
	mu.Unlock()
}

// reload 解析到新的 AppConfig，校验通过后才替换 Config，再通知回调
func reload(v *viper.Viper) error {
	next := new(AppConfig)
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(next); err != nil {
		return err
	}
	mu.Lock()
	Config = next
	fns := append([]func(*AppConfig){}, listeners...)
	mu.Unlock()
	for _, fn := range fns {
		fn(next)
	}
	return nil
}

func envInit(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	if err := v.Unmarshal(Config); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

func Init() (err error) {
	v := viper.GetViper()
	setDefaults(v)

	// 1. 检查运行模式环境变量
	v.AutomaticEnv()
	runMode := strings.ToLower(v.GetString("RUN_MODE"))

	// 2. 如果是本地模式，使用 config.yaml
	if runMode == "local" {
		fmt.Println("[INFO] Running in LOCAL mode, loading " + ConfigFile + "...")
		err = localInit(v)
	} else {
		// 3. 否则，运行在云函数模式（或默认模式），依赖环境变量
		fmt.Println("[INFO] Running in CLOUD/PRODUCTION mode, prioritizing environment variables...")
		err = envInit(v)
	}
	if err != nil {
		return err
	}
	return Validate(Config)
}

// Validate 检查必须的配置项
func Validate(c *AppConfig) error {
	if c.AppSettings == nil || c.LogConfig == nil || c.StaticConfig == nil || c.ColorConfig == nil {
		return fmt.Errorf("config sections app/log/static/color are required")
	}
	if c.AppSettings.Port <= 0 || c.AppSettings.Port > 65535 {
		return fmt.Errorf("invalid app.port: %d", c.AppSettings.Port)
	}
	if c.ColorConfig.HistorySize <= 0 {
		return fmt.Errorf("invalid color.history_size: %d", c.ColorConfig.HistorySize)
	}
	if !strings.HasPrefix(c.StaticConfig.Route, "/") {
		return fmt.Errorf("static.route must start with '/': %q", c.StaticConfig.Route)
	}
	return nil
}
