package eventbus

import (
	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 总线选项
// ============================================================================

// Option 总线选项函数类型
type Option func(*busSettings)

type busSettings struct {
	namespace  string
	buffering  bool
	replayMode pkgif.ReplayMode
	clock      clock.Clock
	reporter   metrics.Reporter
}

func defaultBusSettings() busSettings {
	return busSettings{
		namespace:  config.DefaultNamespace,
		buffering:  true,
		replayMode: pkgif.ReplayAll,
		clock:      clock.New(),
		reporter:   metrics.NopReporter{},
	}
}

// WithNamespace 设置总线所属的命名空间名称（用于事件与日志）
func WithNamespace(ns string) Option {
	return func(s *busSettings) {
		s.namespace = ns
	}
}

// WithBuffering 设置是否启用离线缓冲
//
// 关闭后总线创建即处于 Disarmed 状态，无人订阅时 Trigger 直接丢弃。
func WithBuffering(enabled bool) Option {
	return func(s *busSettings) {
		s.buffering = enabled
	}
}

// WithDefaultReplay 设置 Listen 未指定回放模式时使用的模式
func WithDefaultReplay(m pkgif.ReplayMode) Option {
	return func(s *busSettings) {
		if m != pkgif.ReplayDefault {
			s.replayMode = m
		}
	}
}

// WithClock 设置时钟（用于 Event.TriggeredAt）
func WithClock(c clock.Clock) Option {
	return func(s *busSettings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithReporter 设置指标记录器
func WithReporter(r metrics.Reporter) Option {
	return func(s *busSettings) {
		if r != nil {
			s.reporter = r
		}
	}
}

// ============================================================================
// 监听选项（便利函数）
// ============================================================================

// ReplayLast 首次 Listen 只回放最后一个离线事件
//
// 与 pkg/interfaces.OnlyLast 等效
func ReplayLast() pkgif.ListenOption {
	return pkgif.OnlyLast()
}

// WithReplayMode 指定首次 Listen 的回放模式
//
// 与 pkg/interfaces.WithReplayMode 等效
func WithReplayMode(m pkgif.ReplayMode) pkgif.ListenOption {
	return pkgif.WithReplayMode(m)
}
