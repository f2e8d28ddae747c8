package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector 基于 Prometheus 的指标收集器
//
// Collector 实现 prometheus.Collector，并内嵌一个 Counter 用于进程内快照。
type Collector struct {
	*Counter

	triggered  *prometheus.CounterVec
	dispatched *prometheus.CounterVec
	buffered   *prometheus.CounterVec
	replayed   *prometheus.CounterVec
	discarded  *prometheus.CounterVec
}

// NewCollector 创建收集器，ns 为 Prometheus 指标命名空间
func NewCollector(ns string) *Collector {
	newVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      name,
			Help:      help,
		}, labels)
	}

	return &Collector{
		Counter:    NewCounter(),
		triggered:  newVec("triggered_total", "Number of Trigger calls.", "bus", "message"),
		dispatched: newVec("dispatched_total", "Number of listener invocations.", "bus", "message"),
		buffered:   newVec("buffered_total", "Number of triggers queued before the first listener.", "bus"),
		replayed:   newVec("replayed_total", "Number of queued triggers replayed.", "bus"),
		discarded:  newVec("discarded_total", "Number of queued triggers dropped by last-mode replay.", "bus"),
	}
}

// LogTriggered 记录一次 Trigger 调用
func (c *Collector) LogTriggered(namespace, name string) {
	c.Counter.LogTriggered(namespace, name)
	c.triggered.WithLabelValues(namespace, name).Inc()
}

// LogDispatched 记录投递次数
func (c *Collector) LogDispatched(namespace, name string, n int) {
	c.Counter.LogDispatched(namespace, name, n)
	c.dispatched.WithLabelValues(namespace, name).Add(float64(n))
}

// LogBuffered 记录一次离线缓冲
func (c *Collector) LogBuffered(namespace string) {
	c.Counter.LogBuffered(namespace)
	c.buffered.WithLabelValues(namespace).Inc()
}

// LogReplayed 记录回放数量
func (c *Collector) LogReplayed(namespace string, n int) {
	c.Counter.LogReplayed(namespace, n)
	c.replayed.WithLabelValues(namespace).Add(float64(n))
}

// LogDiscarded 记录丢弃数量
func (c *Collector) LogDiscarded(namespace string, n int) {
	c.Counter.LogDiscarded(namespace, n)
	c.discarded.WithLabelValues(namespace).Add(float64(n))
}

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, v := range c.vecs() {
		v.Describe(ch)
	}
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, v := range c.vecs() {
		v.Collect(ch)
	}
}

func (c *Collector) vecs() []*prometheus.CounterVec {
	return []*prometheus.CounterVec{c.triggered, c.dispatched, c.buffered, c.replayed, c.discarded}
}
