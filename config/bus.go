package config

import "fmt"

// 默认值
const (
	// DefaultNamespace 保留的默认命名空间名称
	DefaultNamespace = "default"

	// ReplayModeAll 回放全部离线事件
	ReplayModeAll = "all"

	// ReplayModeLast 只回放最后一个离线事件
	ReplayModeLast = "last"
)

// BusConfig 总线配置
type BusConfig struct {
	// DefaultNamespace 未指定命名空间时使用的名称
	// 默认值: "default"
	DefaultNamespace string `json:"default_namespace" yaml:"default_namespace"`

	// Buffering 新建总线是否缓冲订阅前触发的消息
	// 关闭后 Trigger 在无人订阅时直接丢弃
	// 默认值: true
	Buffering bool `json:"buffering" yaml:"buffering"`

	// ReplayMode Listen 未显式指定时使用的回放模式（"all" 或 "last"）
	// 默认值: "all"
	ReplayMode string `json:"replay_mode" yaml:"replay_mode"`
}

// DefaultBusConfig 返回默认的总线配置
func DefaultBusConfig() BusConfig {
	return BusConfig{
		DefaultNamespace: DefaultNamespace,
		Buffering:        true,
		ReplayMode:       ReplayModeAll,
	}
}

// Validate 验证总线配置的有效性
func (c *BusConfig) Validate() error {
	if c.DefaultNamespace == "" {
		return fmt.Errorf("bus: default_namespace cannot be empty")
	}
	switch c.ReplayMode {
	case "", ReplayModeAll, ReplayModeLast:
	default:
		return fmt.Errorf("bus: invalid replay_mode %q (want %q or %q)", c.ReplayMode, ReplayModeAll, ReplayModeLast)
	}
	return nil
}
