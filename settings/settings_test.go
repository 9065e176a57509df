package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	Config = new(AppConfig)
	listeners = nil
	t.Cleanup(viper.Reset)
}

func TestInit_EnvMode(t *testing.T) {
	resetConfig(t)
	t.Setenv("RUN_MODE", "")
	t.Setenv("HOST", "")
	t.Setenv("MODE", "")
	t.Setenv("PORT", "9001")
	t.Setenv("HISTORY_SIZE", "5")
	t.Setenv("LOG_LEVEL", "warn")

	require.NoError(t, Init())
	assert.Equal(t, 9001, Config.AppSettings.Port)
	assert.Equal(t, "0.0.0.0", Config.AppSettings.Host)
	assert.Equal(t, 5, Config.ColorConfig.HistorySize)
	assert.Equal(t, "#2563EB", Config.ColorConfig.DefaultColor)
	assert.Equal(t, "warn", Config.LogConfig.Level)
	assert.Equal(t, "/static-color-converter.html", Config.StaticConfig.Route)
}

func TestInit_EnvModeInvalid(t *testing.T) {
	resetConfig(t)
	t.Setenv("RUN_MODE", "")
	t.Setenv("HISTORY_SIZE", "0")

	assert.Error(t, Init())
}

func TestInit_LocalMode(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf"), 0o755))
	yaml := []byte(`
app:
  host: "127.0.0.1"
  port: 8088
log:
  level: "debug"
static:
  route: "/index.html"
  page: "index.html"
color:
  history_size: 20
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), yaml, 0o644))
	chdir(t, dir)
	t.Setenv("RUN_MODE", "local")

	require.NoError(t, Init())
	assert.Equal(t, "127.0.0.1", Config.AppSettings.Host)
	assert.Equal(t, 8088, Config.AppSettings.Port)
	assert.Equal(t, 20, Config.ColorConfig.HistorySize)
	assert.Equal(t, "/index.html", Config.StaticConfig.Route)
	// 没写的项使用默认值
	assert.Equal(t, "#2563EB", Config.ColorConfig.DefaultColor)
}

func TestInit_LocalModeMissingFile(t *testing.T) {
	resetConfig(t)
	chdir(t, t.TempDir())
	t.Setenv("RUN_MODE", "local")

	assert.Error(t, Init())
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			AppSettings:  &AppSettings{Port: 8080},
			LogConfig:    &LogConfig{},
			StaticConfig: &StaticConfig{Route: "/page.html"},
			ColorConfig:  &ColorConfig{HistorySize: 10},
		}
	}
	assert.NoError(t, Validate(valid()))

	c := valid()
	c.AppSettings.Port = 70000
	assert.Error(t, Validate(c))

	c = valid()
	c.StaticConfig.Route = "page.html"
	assert.Error(t, Validate(c))

	c = valid()
	c.ColorConfig = nil
	assert.Error(t, Validate(c))
}

func TestReload_NotifiesListeners(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	write := func(body string) {
		require.NoError(t, os.WriteFile(file, []byte(body), 0o644))
	}
	write("color:\n  history_size: 5\n  default_color: \"#FF0000\"\n")

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(file)
	require.NoError(t, v.ReadInConfig())
	require.NoError(t, reload(v))
	assert.Equal(t, "#FF0000", Config.ColorConfig.DefaultColor)

	var got []*ColorConfig
	OnChange(func(c *AppConfig) { got = append(got, c.ColorConfig) })

	write("color:\n  history_size: 3\n  default_color: \"#00FF00\"\n")
	require.NoError(t, v.ReadInConfig())
	require.NoError(t, reload(v))
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].HistorySize)
	assert.Equal(t, "#00FF00", Config.ColorConfig.DefaultColor)

	// 校验不通过时保留旧配置，也不通知
	write("color:\n  history_size: 0\n")
	require.NoError(t, v.ReadInConfig())
	assert.Error(t, reload(v))
	assert.Len(t, got, 1)
	assert.Equal(t, "#00FF00", Config.ColorConfig.DefaultColor)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
