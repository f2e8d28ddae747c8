package metrics

import "sync/atomic"

// Counter 进程内指标计数器
//
// 只统计全局总量，不区分命名空间。
type Counter struct {
	triggered  atomic.Int64
	dispatched atomic.Int64
	buffered   atomic.Int64
	replayed   atomic.Int64
	discarded  atomic.Int64
}

// NewCounter 创建计数器
func NewCounter() *Counter {
	return &Counter{}
}

// LogTriggered 记录一次 Trigger 调用
func (c *Counter) LogTriggered(_, _ string) {
	c.triggered.Add(1)
}

// LogDispatched 记录投递次数
func (c *Counter) LogDispatched(_, _ string, n int) {
	c.dispatched.Add(int64(n))
}

// LogBuffered 记录一次离线缓冲
func (c *Counter) LogBuffered(_ string) {
	c.buffered.Add(1)
}

// LogReplayed 记录回放数量
func (c *Counter) LogReplayed(_ string, n int) {
	c.replayed.Add(int64(n))
}

// LogDiscarded 记录丢弃数量
func (c *Counter) LogDiscarded(_ string, n int) {
	c.discarded.Add(int64(n))
}

// Snapshot 返回当前指标快照
func (c *Counter) Snapshot() Stats {
	return Stats{
		Triggered:  c.triggered.Load(),
		Dispatched: c.dispatched.Load(),
		Buffered:   c.buffered.Load(),
		Replayed:   c.replayed.Load(),
		Discarded:  c.discarded.Load(),
	}
}

// Reset 重置所有计数
func (c *Counter) Reset() {
	c.triggered.Store(0)
	c.dispatched.Store(0)
	c.buffered.Store(0)
	c.replayed.Store(0)
	c.discarded.Store(0)
}
