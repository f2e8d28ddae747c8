package metrics

// Stats 事件总线指标快照
type Stats struct {
	Triggered  int64 // Trigger 调用次数（含进入离线缓冲的）
	Dispatched int64 // 投递给监听者的次数
	Buffered   int64 // 进入离线缓冲的次数
	Replayed   int64 // 回放的离线事件数
	Discarded  int64 // last 模式下丢弃的离线事件数
}
