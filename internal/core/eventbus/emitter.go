package eventbus

import (
	"sync"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Emitter 实现
// ============================================================================

// Emitter 可嵌入任意类型，为其提供独立的 Listen/Trigger/Remove/One
//
//	type SalesOffice struct {
//	    eventbus.Emitter
//	    Name string
//	}
//
//	office := &SalesOffice{Name: "east"}
//	office.Listen("squareMeter88", l)
//	office.Trigger("squareMeter88", 2000000)
//
// 零值 Emitter 可以直接使用，其总线不带离线缓冲：无人订阅时 Trigger 直接丢弃。
// 需要离线缓冲或其他选项时使用 NewEmitter。
type Emitter struct {
	once       sync.Once
	configured bool
	opts       []Option
	bus        *Bus
}

// NewEmitter 创建 Emitter，opts 在首次使用时用于创建内部总线
func NewEmitter(opts ...Option) *Emitter {
	return &Emitter{configured: true, opts: opts}
}

// Bus 返回内部总线
func (e *Emitter) Bus() *Bus {
	e.once.Do(func() {
		if !e.configured {
			e.bus = NewBus(WithBuffering(false))
			return
		}
		e.bus = NewBus(e.opts...)
	})
	return e.bus
}

// Listen 注册监听者
func (e *Emitter) Listen(name string, l *pkgif.Listener, opts ...pkgif.ListenOption) error {
	return e.Bus().Listen(name, l, opts...)
}

// Trigger 触发消息
func (e *Emitter) Trigger(name string, payload any) error {
	return e.Bus().Trigger(name, payload)
}

// Remove 移除监听者
func (e *Emitter) Remove(name string, ls ...*pkgif.Listener) {
	e.Bus().Remove(name, ls...)
}

// One 替换监听者
func (e *Emitter) One(name string, l *pkgif.Listener, opts ...pkgif.ListenOption) error {
	return e.Bus().One(name, l, opts...)
}
