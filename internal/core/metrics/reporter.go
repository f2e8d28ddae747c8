package metrics

// Reporter 记录事件总线指标
//
// 所有方法都会在总线的热路径上被同步调用，实现必须足够轻量。
type Reporter interface {
	// LogTriggered 记录一次 Trigger 调用
	LogTriggered(namespace, name string)

	// LogDispatched 记录一次分发实际调用的监听者数量
	LogDispatched(namespace, name string, n int)

	// LogBuffered 记录一次进入离线缓冲的触发
	LogBuffered(namespace string)

	// LogReplayed 记录回放的离线事件数量
	LogReplayed(namespace string, n int)

	// LogDiscarded 记录被丢弃的离线事件数量
	LogDiscarded(namespace string, n int)
}

// NopReporter 不记录任何指标
type NopReporter struct{}

func (NopReporter) LogTriggered(string, string)       {}
func (NopReporter) LogDispatched(string, string, int) {}
func (NopReporter) LogBuffered(string)                {}
func (NopReporter) LogReplayed(string, int)           {}
func (NopReporter) LogDiscarded(string, int)          {}

// 确保实现 Reporter 接口
var (
	_ Reporter = NopReporter{}
	_ Reporter = (*Counter)(nil)
	_ Reporter = (*Collector)(nil)
)
