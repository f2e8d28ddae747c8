// Package eventbus 提供带命名空间、支持先发布后订阅的进程内事件总线
//
// # 核心概念
//
//   - Registry: 命名空间注册表，一个名称对应一条 Bus，首次访问时创建
//   - Bus: 单个命名空间的发布订阅通道，按消息名维护有序监听者
//   - 离线缓冲: 总线出现第一个监听者之前的 Trigger 会入队，在第一次 Listen 时回放一次
//
// # 快速开始
//
//	import "github.com/dep2p/go-eventbus"
//
//	reg, err := eventbus.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 先发布
//	reg.Trigger("click", 1)
//
//	// 后订阅：回调在 Listen 返回前收到 1
//	reg.Listen("click", eventbus.NewListener(func(evt eventbus.Event) error {
//	    fmt.Println(evt.Payload)
//	    return nil
//	}))
//
//	// 使用命名空间
//	reg.Create("namespace1").Trigger("click", 1)
//
// # 类型化消息
//
// Topic 把消息名与载荷类型绑定，发布方与订阅方在编译期保持一致：
//
//	var Resize = eventbus.NewTopic[Size]("resize")
//
//	Resize.Listen(reg, func(s Size) error { ... })
//	Resize.Trigger(reg, Size{W: 80, H: 24})
//
// # 回放模式
//
//   - 默认：按入队顺序回放全部离线消息（所有消息名）
//   - eventbus.OnlyLast()：只回放最后一条离线消息，其余丢弃
//
// # Fx 集成
//
//	app := fx.New(
//	    fx.Supply(cfg),
//	    eventbus.Module(),
//	    fx.Invoke(func(reg *eventbus.Registry) { ... }),
//	)
//
// # 文件组织
//
//   - eventbus.go: 版本信息、类型别名、构造函数
//   - topic.go: 类型化消息
//   - errors.go: 公共错误
//   - internal/core/eventbus: Bus、Registry、Emitter 实现
//   - internal/core/metrics: 指标收集
//   - config: 统一配置
package eventbus
