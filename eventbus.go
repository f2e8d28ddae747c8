package eventbus

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "go-eventbus " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Bus 单个命名空间的事件总线
	Bus = eventbus.Bus

	// Registry 命名空间注册表
	Registry = eventbus.Registry

	// Emitter 可嵌入任意类型的事件能力
	Emitter = eventbus.Emitter

	// Option 总线选项
	Option = eventbus.Option

	// Event 投递给监听者的事件
	Event = pkgif.Event

	// Listener 监听者
	Listener = pkgif.Listener

	// HandlerFunc 监听回调
	HandlerFunc = pkgif.HandlerFunc

	// ListenOption 监听选项
	ListenOption = pkgif.ListenOption

	// ReplayMode 回放模式
	ReplayMode = pkgif.ReplayMode

	// Publisher 任意提供 Listen/Trigger/Remove/One 的对象（Bus、Registry、Emitter）
	Publisher = pkgif.Bus
)

// 回放模式
const (
	ReplayDefault = pkgif.ReplayDefault
	ReplayAll     = pkgif.ReplayAll
	ReplayLast    = pkgif.ReplayLast
)

// 便利函数
var (
	// NewListener 创建监听者
	NewListener = pkgif.NewListener

	// ParseReplayMode 解析回放模式（只有 "last" 表示 ReplayLast）
	ParseReplayMode = pkgif.ParseReplayMode

	// WithReplayMode 指定首次 Listen 的回放模式
	WithReplayMode = pkgif.WithReplayMode

	// NewBus 创建独立的事件总线
	NewBus = eventbus.NewBus

	// NewEmitter 创建带选项的 Emitter
	NewEmitter = eventbus.NewEmitter

	// WithNamespace 总线命名空间
	WithNamespace = eventbus.WithNamespace

	// WithBuffering 是否启用离线缓冲
	WithBuffering = eventbus.WithBuffering

	// WithDefaultReplay 总线默认回放模式
	WithDefaultReplay = eventbus.WithDefaultReplay

	// WithClock 总线时钟
	WithClock = eventbus.WithClock

	// WithReporter 指标记录器
	WithReporter = eventbus.WithReporter
)

// OnlyLast 首次 Listen 只回放最后一个离线事件
func OnlyLast() ListenOption {
	return pkgif.OnlyLast()
}

// ════════════════════════════════════════════════════════════════════════════
//                              构造
// ════════════════════════════════════════════════════════════════════════════

// New 根据统一配置创建命名空间注册表
//
// cfg 为 nil 时使用默认配置。opts 应用到注册表创建的每一条总线。
func New(cfg *config.Config, opts ...Option) (*Registry, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return eventbus.NewRegistry(eventbus.ConfigFromUnified(cfg), opts...), nil
}

// Module 返回完整的 Fx 模块（指标 + 事件总线）
//
// 可通过 fx.Supply(*config.Config) 提供配置，未提供时使用默认值。
func Module() fx.Option {
	return fx.Options(
		metrics.Module,
		eventbus.Module(),
	)
}
