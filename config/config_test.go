package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// TestNewConfig 测试创建默认配置
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultNamespace, cfg.Bus.DefaultNamespace)
	assert.True(t, cfg.Bus.Buffering)
	assert.Equal(t, ReplayModeAll, cfg.Bus.ReplayMode)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestBusConfig 测试总线配置
func TestBusConfig(t *testing.T) {
	t.Run("EmptyNamespace", func(t *testing.T) {
		cfg := DefaultBusConfig()
		cfg.DefaultNamespace = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("ReplayModes", func(t *testing.T) {
		for _, mode := range []string{"", ReplayModeAll, ReplayModeLast} {
			cfg := DefaultBusConfig()
			cfg.ReplayMode = mode
			assert.NoError(t, cfg.Validate(), mode)
		}
	})

	t.Run("InvalidReplayMode", func(t *testing.T) {
		cfg := DefaultBusConfig()
		cfg.ReplayMode = "first"
		assert.Error(t, cfg.Validate())
	})
}

// TestConfig_ValidateCollectsAll 测试所有子配置错误被一并返回
func TestConfig_ValidateCollectsAll(t *testing.T) {
	cfg := NewConfig()
	cfg.Bus.DefaultNamespace = ""
	cfg.Metrics.Namespace = ""
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

// TestMetricsConfig_Disabled 测试关闭指标时不要求命名空间
func TestMetricsConfig_Disabled(t *testing.T) {
	cfg := MetricsConfig{Enabled: false}
	assert.NoError(t, cfg.Validate())
}

// TestFromJSON 测试 JSON 加载
func TestFromJSON(t *testing.T) {
	cfg, err := FromJSON([]byte(`{"bus":{"replay_mode":"last"},"metrics":{"enabled":false}}`))
	require.NoError(t, err)

	assert.Equal(t, ReplayModeLast, cfg.Bus.ReplayMode)
	assert.Equal(t, DefaultNamespace, cfg.Bus.DefaultNamespace, "未出现的字段保留默认值")
	assert.False(t, cfg.Metrics.Enabled)

	_, err = FromJSON([]byte(`{`))
	assert.Error(t, err)
}

// TestToJSON_RoundTrip 测试 JSON 序列化后能重新加载
func TestToJSON_RoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Bus.DefaultNamespace = "app"

	data, err := cfg.ToJSON()
	require.NoError(t, err)

	loaded, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// TestLoadFile 测试按扩展名加载文件
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "eventbus.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("bus:\n  default_namespace: ui\n  buffering: false\n"), 0o600))

	cfg, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "ui", cfg.Bus.DefaultNamespace)
	assert.False(t, cfg.Bus.Buffering)
	assert.Equal(t, ReplayModeAll, cfg.Bus.ReplayMode)

	jsonPath := filepath.Join(dir, "eventbus.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"log":{"level":"debug"}}`), 0o600))

	cfg, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

// TestApplyEnv 测试环境变量覆盖
func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"EVENTBUS_DEFAULT_NAMESPACE": "env",
		"EVENTBUS_BUFFERING":         "false",
		"EVENTBUS_REPLAY_MODE":       "last",
		"EVENTBUS_METRICS":           "not-a-bool",
		"EVENTBUS_LOG_LEVEL":         "warn",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := NewConfig()
	ApplyEnv(cfg, lookup)

	assert.Equal(t, "env", cfg.Bus.DefaultNamespace)
	assert.False(t, cfg.Bus.Buffering)
	assert.Equal(t, ReplayModeLast, cfg.Bus.ReplayMode)
	assert.True(t, cfg.Metrics.Enabled, "无法解析的布尔值被忽略")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}
