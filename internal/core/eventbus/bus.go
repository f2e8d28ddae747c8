// Package eventbus 实现带命名空间的进程内事件总线
package eventbus

import (
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-eventbus/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 单个命名空间的事件总线
type Bus struct {
	mu sync.Mutex

	namespace string

	// subscribers 消息名 -> 监听者（注册顺序即调用顺序）
	subscribers map[string][]*pkgif.Listener

	// armed 是否仍处于离线缓冲状态，第一次 Listen 后永久为 false
	armed bool

	// buffer 离线消息，按触发顺序排列
	buffer []pending

	replayMode pkgif.ReplayMode
	clock      clock.Clock
	reporter   metrics.Reporter
}

// pending 离线消息
type pending struct {
	name    string
	payload any
	at      time.Time
}

// NewBus 创建新的事件总线
func NewBus(opts ...Option) *Bus {
	s := defaultBusSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return &Bus{
		namespace:   s.namespace,
		subscribers: make(map[string][]*pkgif.Listener),
		armed:       s.buffering,
		replayMode:  s.replayMode,
		clock:       s.clock,
		reporter:    s.reporter,
	}
}

// ============================================================================
// Bus 接口实现
// ============================================================================

// Listen 注册监听者
//
// l 追加到 name 的监听者列表末尾。若这是总线上的第一次 Listen，
// 离线缓冲在返回前按回放模式同步回放并永久关闭；回放中监听者返回的错误
// 会作为 Listen 的返回值。
func (b *Bus) Listen(name string, l *pkgif.Listener, opts ...pkgif.ListenOption) error {
	return b.register(name, l, false, opts)
}

// One 用 l 替换 name 下的全部监听者
//
// 等价于 Remove(name) 后 Listen(name, l, opts...)，但清空与注册在同一临界区内完成。
// 它不是「只触发一次」的订阅。
func (b *Bus) One(name string, l *pkgif.Listener, opts ...pkgif.ListenOption) error {
	return b.register(name, l, true, opts)
}

// Trigger 触发消息
//
// 离线缓冲开启时只入队并返回 nil；否则按注册顺序同步调用 name 下的监听者，
// 第一个返回错误的监听者会中止本次分发。没有监听者时静默返回。
func (b *Bus) Trigger(name string, payload any) error {
	at := b.clock.Now()
	b.reporter.LogTriggered(b.namespace, name)

	b.mu.Lock()
	if b.armed {
		b.buffer = append(b.buffer, pending{name: name, payload: payload, at: at})
		b.mu.Unlock()
		b.reporter.LogBuffered(b.namespace)
		return nil
	}
	b.mu.Unlock()

	return b.dispatch(name, payload, at, false)
}

// Remove 移除监听者
//
// 不传监听者（或只传 nil）时清空 name 下的全部监听者；
// 否则移除每个给定监听者在 name 下的所有注册。name 或监听者不存在时不做任何事。
func (b *Bus) Remove(name string, ls ...*pkgif.Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.removeLocked(name, ls)
}

// ============================================================================
// 状态查询
// ============================================================================

// Namespace 返回总线所属命名空间
func (b *Bus) Namespace() string {
	return b.namespace
}

// Armed 离线缓冲是否仍然开启
func (b *Bus) Armed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.armed
}

// Pending 返回离线缓冲中的消息数
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buffer)
}

// ListenerCount 返回 name 下的监听者数量（重复注册分别计数）
func (b *Bus) ListenerCount(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers[name])
}

// Names 返回当前有监听者的消息名（已排序）
func (b *Bus) Names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.subscribers))
	for name := range b.subscribers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ============================================================================
// 内部方法
// ============================================================================

// register 注册监听者并在需要时关闭离线缓冲
func (b *Bus) register(name string, l *pkgif.Listener, replace bool, opts []pkgif.ListenOption) error {
	if !l.Valid() {
		return ErrNilListener
	}

	settings := listenSettings{Replay: pkgif.ReplayDefault}
	for _, opt := range opts {
		opt(&settings)
	}

	b.mu.Lock()
	if replace {
		delete(b.subscribers, name)
	}
	b.subscribers[name] = append(b.subscribers[name], l)

	if !b.armed {
		b.mu.Unlock()
		return nil
	}

	// 先关闭缓冲再回放：回放中的 Trigger 直接分发，嵌套的 Listen 不会再次回放
	b.armed = false
	backlog := b.buffer
	b.buffer = nil
	b.mu.Unlock()

	mode := settings.Replay
	if mode == pkgif.ReplayDefault {
		mode = b.replayMode
	}

	logger.Debug("离线缓冲关闭",
		"namespace", b.namespace,
		"name", name,
		"pending", len(backlog),
		"mode", mode.String())

	return b.flush(backlog, mode)
}

// flush 回放离线消息
func (b *Bus) flush(backlog []pending, mode pkgif.ReplayMode) error {
	if len(backlog) == 0 {
		return nil
	}

	if mode == pkgif.ReplayLast {
		if dropped := len(backlog) - 1; dropped > 0 {
			b.reporter.LogDiscarded(b.namespace, dropped)
			logger.Debug("丢弃离线消息", "namespace", b.namespace, "dropped", dropped)
		}
		backlog = backlog[len(backlog)-1:]
	}

	for i, p := range backlog {
		b.reporter.LogReplayed(b.namespace, 1)
		if err := b.dispatch(p.name, p.payload, p.at, true); err != nil {
			logger.Warn("离线消息回放中止",
				"namespace", b.namespace,
				"name", p.name,
				"skipped", len(backlog)-i-1,
				"err", err)
			return err
		}
	}
	return nil
}

// dispatch 将消息投递给 name 当前的监听者
func (b *Bus) dispatch(name string, payload any, at time.Time, replayed bool) error {
	b.mu.Lock()
	current := b.subscribers[name]
	if len(current) == 0 {
		b.mu.Unlock()
		return nil
	}
	snapshot := make([]*pkgif.Listener, len(current))
	copy(snapshot, current)
	b.mu.Unlock()

	evt := pkgif.Event{
		Namespace:   b.namespace,
		Name:        name,
		Payload:     payload,
		TriggeredAt: at,
		Replayed:    replayed,
	}

	for i, l := range snapshot {
		if err := l.Handle(evt); err != nil {
			b.reporter.LogDispatched(b.namespace, name, i+1)
			return &ListenerError{
				Namespace:  b.namespace,
				Name:       name,
				ListenerID: l.ID(),
				Replayed:   replayed,
				Err:        err,
			}
		}
	}
	b.reporter.LogDispatched(b.namespace, name, len(snapshot))
	return nil
}

// removeLocked 移除监听者，调用方需持有 b.mu
func (b *Bus) removeLocked(name string, ls []*pkgif.Listener) {
	current, ok := b.subscribers[name]
	if !ok {
		return
	}

	targets := make(map[*pkgif.Listener]struct{}, len(ls))
	for _, l := range ls {
		if l != nil {
			targets[l] = struct{}{}
		}
	}
	if len(targets) == 0 {
		delete(b.subscribers, name)
		return
	}

	// 生成新切片，正在进行的分发持有的快照不受影响
	kept := make([]*pkgif.Listener, 0, len(current))
	for _, l := range current {
		if _, drop := targets[l]; !drop {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		delete(b.subscribers, name)
		return
	}
	b.subscribers[name] = kept
}
