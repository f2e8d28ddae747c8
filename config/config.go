// Package config 提供统一的配置管理
//
// 本包沿用分层配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义，并提供 Default*Config 与 Validate
//   - 支持从 JSON/YAML 加载，支持 EVENTBUS_ 前缀的环境变量覆盖
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Bus.ReplayMode = config.ReplayModeLast
//
//	// 从文件加载
//	cfg, err := config.LoadFile("eventbus.yaml")
package config

import (
	"go.uber.org/multierr"
)

// Config 是 go-eventbus 的完整配置结构
//
// 配置按照功能模块组织：
//   - Bus: 命名空间与离线缓冲
//   - Metrics: 指标收集
//   - Log: 日志输出
type Config struct {
	// Bus 总线配置
	Bus BusConfig `json:"bus" yaml:"bus"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Log 日志配置
	Log LogConfig `json:"log" yaml:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Bus:     DefaultBusConfig(),
		Metrics: DefaultMetricsConfig(),
		Log:     DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
//
// 与逐项返回不同，这里会收集所有子配置的错误一并返回。
func (c *Config) Validate() error {
	var err error
	err = multierr.Append(err, c.Bus.Validate())
	err = multierr.Append(err, c.Metrics.Validate())
	err = multierr.Append(err, c.Log.Validate())
	return err
}
