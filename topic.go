package eventbus

import (
	"fmt"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型化消息
// ════════════════════════════════════════════════════════════════════════════

// Topic 绑定了载荷类型的消息名
//
// Topic 本身不持有状态，可声明为包级变量供发布方与订阅方共享：
//
//	var Click = eventbus.NewTopic[int]("click")
type Topic[T any] struct {
	name string
}

// NewTopic 创建类型化消息
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

// Name 返回消息名
func (t Topic[T]) Name() string {
	return t.name
}

// Listener 把类型化回调包装为监听者
//
// 载荷为 nil 时传入 T 的零值；载荷类型不符时返回包装了 ErrPayloadType 的错误，
// 回调不会被调用。返回的监听者可以用于 Remove。
func (t Topic[T]) Listener(fn func(T) error) *Listener {
	if fn == nil {
		return NewListener(nil)
	}
	return NewListener(func(evt Event) error {
		if evt.Payload == nil {
			var zero T
			return fn(zero)
		}
		v, ok := evt.Payload.(T)
		if !ok {
			var zero T
			return fmt.Errorf("%w: %s/%s want %T, got %T",
				ErrPayloadType, evt.Namespace, evt.Name, zero, evt.Payload)
		}
		return fn(v)
	})
}

// Listen 在 bus 上注册类型化回调，返回的监听者可以用于 Remove
func (t Topic[T]) Listen(bus Publisher, fn func(T) error, opts ...ListenOption) (*Listener, error) {
	l := t.Listener(fn)
	if err := bus.Listen(t.name, l, opts...); err != nil {
		return l, err
	}
	return l, nil
}

// One 用类型化回调替换 bus 上该消息的全部监听者
func (t Topic[T]) One(bus Publisher, fn func(T) error, opts ...ListenOption) (*Listener, error) {
	l := t.Listener(fn)
	if err := bus.One(t.name, l, opts...); err != nil {
		return l, err
	}
	return l, nil
}

// Trigger 在 bus 上触发消息
func (t Topic[T]) Trigger(bus Publisher, v T) error {
	return bus.Trigger(t.name, v)
}

// Remove 移除监听者，不传监听者时清空
func (t Topic[T]) Remove(bus Publisher, ls ...*Listener) {
	bus.Remove(t.name, ls...)
}
