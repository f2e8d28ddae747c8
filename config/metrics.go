package config

import "fmt"

// DefaultMetricsNamespace 默认的 Prometheus 指标命名空间
const DefaultMetricsNamespace = "eventbus"

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用指标收集
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Namespace Prometheus 指标命名空间
	Namespace string `json:"namespace" yaml:"namespace"`
}

// DefaultMetricsConfig 返回默认的指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: DefaultMetricsNamespace,
	}
}

// Validate 验证指标配置的有效性
func (c *MetricsConfig) Validate() error {
	if c.Enabled && c.Namespace == "" {
		return fmt.Errorf("metrics: namespace cannot be empty when enabled")
	}
	return nil
}
