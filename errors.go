package eventbus

import (
	"errors"

	"github.com/dep2p/go-eventbus/internal/core/eventbus"
)

// 公共错误定义
var (
	// ErrNilListener 监听者为空或没有回调
	ErrNilListener = eventbus.ErrNilListener

	// ErrPayloadType 类型化监听者收到了类型不符的载荷
	ErrPayloadType = errors.New("eventbus: payload type mismatch")

	// ErrInvalidConfig 配置无效
	ErrInvalidConfig = errors.New("eventbus: invalid config")
)

// ListenerError 监听者回调返回的错误
type ListenerError = eventbus.ListenerError
