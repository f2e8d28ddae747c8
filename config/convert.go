package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保留默认值。
//
// 示例 JSON:
//
//	{
//	  "bus": {"default_namespace": "app", "replay_mode": "last"},
//	  "metrics": {"enabled": false}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// FromYAML 从 YAML 数据创建配置
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ToJSON 将配置序列化为 JSON
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// LoadFile 从文件加载配置
//
// 根据扩展名选择格式：.yaml/.yml 按 YAML 解析，其余按 JSON 解析。
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: 用户指定的配置文件路径是预期行为
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

// ============================================================================
//                              环境变量
// ============================================================================

// 环境变量前缀和名称常量
const (
	// EnvPrefix 环境变量前缀
	EnvPrefix = "EVENTBUS_"

	// EnvDefaultNamespace 默认命名空间
	EnvDefaultNamespace = "DEFAULT_NAMESPACE"

	// EnvBuffering 是否启用离线缓冲
	EnvBuffering = "BUFFERING"

	// EnvReplayMode 默认回放模式
	EnvReplayMode = "REPLAY_MODE"

	// EnvMetrics 是否启用指标
	EnvMetrics = "METRICS"

	// EnvLogLevel 日志级别
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogFile 日志文件路径
	EnvLogFile = "LOG_FILE"
)

// ApplyEnv 应用环境变量覆盖配置
//
// 环境变量优先级高于配置文件，但低于命令行参数。
// 无法解析的布尔值会被忽略。
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvDefaultNamespace); ok {
		cfg.Bus.DefaultNamespace = v
	}
	if v, ok := get(EnvBuffering); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Bus.Buffering = b
		}
	}
	if v, ok := get(EnvReplayMode); ok {
		cfg.Bus.ReplayMode = v
	}
	if v, ok := get(EnvMetrics); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := get(EnvLogFile); ok {
		cfg.Log.File = v
	}
}
