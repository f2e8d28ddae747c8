// Package eventbus 实现带命名空间的进程内事件总线
//
// 每个命名空间对应一条完全隔离的 Bus，Bus 按消息名维护有序的监听者列表，
// 并支持「先发布后订阅」：在总线上出现第一个监听者之前触发的消息不会丢失，
// 而是进入离线缓冲，在第一次 Listen 时回放且只回放一次。
//
// # 快速开始
//
//	reg := eventbus.NewRegistry(eventbus.DefaultConfig())
//
//	// 先发布
//	reg.Trigger("click", 1)
//
//	// 后订阅：Listen 返回前回调已收到 1
//	reg.Listen("click", pkgif.NewListener(func(evt pkgif.Event) error {
//	    fmt.Println(evt.Payload)
//	    return nil
//	}))
//
//	// 独立命名空间
//	ui := reg.Create("ui")
//	ui.Trigger("resize", size)
//
// # 离线缓冲状态机
//
//	Armed ──(第一次 Listen，任意消息名)──> Disarmed
//
//   - Armed：Trigger 只入队，不调用任何监听者
//   - Disarmed：Trigger 同步调用当前监听者；无监听者时静默忽略
//   - 回放时每条离线消息投递给「回放时刻」该消息名下的监听者
//   - ReplayLast 只回放最后一条，其余丢弃
//
// 缓冲是整条总线共享的：订阅 "B" 也会回放此前触发的 "A"。
//
// # 错误
//
// 监听者返回的第一个错误会中止当前分发并以 *ListenerError 返回给调用方；
// 全量回放时该错误同时中止剩余离线消息的回放。监听者的 panic 不做恢复。
//
// # 并发安全
//
// Bus 内部使用互斥锁保护监听者表与缓冲，回调在锁外执行，
// 因此监听者可以在回调中对同一条总线调用 Listen/Trigger/Remove/One。
// 分发遍历的是监听者列表的快照，回调中的增删只影响之后的分发。
package eventbus
