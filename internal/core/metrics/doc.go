// Package metrics 提供事件总线的监控指标收集
//
// metrics 模块统计每个命名空间的消息流转情况：
//   - 触发次数（按命名空间/消息名）
//   - 实际投递给监听者的次数
//   - 进入离线缓冲、被回放、被 last 模式丢弃的离线事件数
//
// # 快速开始
//
//	counter := metrics.NewCounter()
//	bus := eventbus.NewBus(eventbus.WithReporter(counter))
//
//	stats := counter.Snapshot()
//	fmt.Printf("triggered=%d replayed=%d\n", stats.Triggered, stats.Replayed)
//
// # Prometheus
//
// Collector 在 Counter 的基础上同时维护 Prometheus 计数器，
// 可以直接注册到任意 prometheus.Registerer：
//
//	c := metrics.NewCollector("eventbus")
//	prometheus.MustRegister(c)
//
// # 并发安全
//
// Counter 使用 atomic 计数；Collector 依赖 prometheus 自身的并发安全实现。
package metrics
