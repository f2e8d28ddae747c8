// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 Bus 接口及监听者、事件、回放模式等公共类型。
package interfaces

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// 事件与监听者
// ============================================================================

// Event 投递给监听者的事件
//
// Event 同时承担调用上下文的角色：监听者可以从中得知事件来自哪个命名空间、
// 最初在何时触发，以及本次调用是否属于离线事件回放。
type Event struct {
	// Namespace 事件所在的命名空间
	Namespace string

	// Name 消息名
	Name string

	// Payload 触发时携带的消息体
	Payload any

	// TriggeredAt 调用 Trigger 的时间（回放时仍为最初的触发时间）
	TriggeredAt time.Time

	// Replayed 是否为离线事件回放
	Replayed bool
}

// HandlerFunc 监听回调
//
// 返回的错误会中止当前的分发，并原样（包装后）返回给 Trigger/Listen 的调用方。
type HandlerFunc func(evt Event) error

// Listener 监听者
//
// Listener 以指针身份参与比较：同一个 *Listener 可以多次注册到同一消息名，
// Remove 时会一并移除所有注册。
type Listener struct {
	id string
	fn HandlerFunc
}

// NewListener 创建监听者
func NewListener(fn HandlerFunc) *Listener {
	return &Listener{
		id: uuid.NewString(),
		fn: fn,
	}
}

// ID 返回监听者 ID（仅用于日志与错误信息）
func (l *Listener) ID() string {
	if l == nil {
		return ""
	}
	return l.id
}

// Valid 监听者是否可用
func (l *Listener) Valid() bool {
	return l != nil && l.fn != nil
}

// Handle 调用监听回调
func (l *Listener) Handle(evt Event) error {
	return l.fn(evt)
}

// ============================================================================
// 回放模式
// ============================================================================

// ReplayMode 离线事件回放模式
type ReplayMode int

const (
	// ReplayDefault 使用总线的默认回放模式
	ReplayDefault ReplayMode = iota
	// ReplayAll 按入队顺序回放全部离线事件
	ReplayAll
	// ReplayLast 只回放最后一个离线事件，其余丢弃
	ReplayLast
)

// String 返回回放模式名称
func (m ReplayMode) String() string {
	switch m {
	case ReplayAll:
		return "all"
	case ReplayLast:
		return "last"
	default:
		return "default"
	}
}

// ParseReplayMode 解析回放模式
//
// 只有 "last" 表示 ReplayLast，其余任何取值都按 ReplayAll 处理。
func ParseReplayMode(s string) ReplayMode {
	if s == "last" {
		return ReplayLast
	}
	return ReplayAll
}

// ============================================================================
// 监听选项
// ============================================================================

// ListenOption 监听选项函数类型
type ListenOption func(*ListenSettings)

// ListenSettings 监听设置（导出以供实现使用）
type ListenSettings struct {
	Replay ReplayMode
}

// WithReplayMode 指定首次 Listen 触发的回放模式
func WithReplayMode(m ReplayMode) ListenOption {
	return func(s *ListenSettings) {
		s.Replay = m
	}
}

// OnlyLast 首次 Listen 只回放最后一个离线事件
func OnlyLast() ListenOption {
	return WithReplayMode(ReplayLast)
}

// ============================================================================
// Bus 接口
// ============================================================================

// Bus 定义单个命名空间的发布订阅接口
type Bus interface {
	// Listen 注册监听者；总线上的第一次 Listen 会回放离线事件
	Listen(name string, l *Listener, opts ...ListenOption) error

	// Trigger 触发消息；总线尚未有人订阅时进入离线缓冲
	Trigger(name string, payload any) error

	// Remove 移除监听者；不传监听者时清空该消息名下的全部监听者
	Remove(name string, ls ...*Listener)

	// One 用 l 替换该消息名下的全部监听者
	One(name string, l *Listener, opts ...ListenOption) error
}
