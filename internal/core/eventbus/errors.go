package eventbus

import (
	"errors"
	"fmt"
)

var (
	// ErrNilListener 监听者为空或没有回调
	ErrNilListener = errors.New("eventbus: nil listener")
)

// ListenerError 监听者回调返回的错误
type ListenerError struct {
	// Namespace 所在命名空间
	Namespace string

	// Name 消息名
	Name string

	// ListenerID 出错的监听者 ID
	ListenerID string

	// Replayed 是否发生在离线事件回放中
	Replayed bool

	// Err 回调返回的原始错误
	Err error
}

// Error 实现 error 接口
func (e *ListenerError) Error() string {
	phase := "trigger"
	if e.Replayed {
		phase = "replay"
	}
	return fmt.Sprintf("eventbus: listener %s failed on %s/%s during %s: %v",
		e.ListenerID, e.Namespace, e.Name, phase, e.Err)
}

// Unwrap 返回原始错误
func (e *ListenerError) Unwrap() error {
	return e.Err
}
