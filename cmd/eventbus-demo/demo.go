package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	eventbus "github.com/dep2p/go-eventbus"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
)

// ============================================================================
//                              演示场景
// ============================================================================

// size 窗口尺寸
type size struct {
	W, H int
}

var resizeTopic = eventbus.NewTopic[size]("resize")

// demoOptions 演示参数
type demoOptions struct {
	namespace string
	replay    eventbus.ReplayMode
}

// runDemo 在命名空间上先发布后订阅
func runDemo(out io.Writer, reg *eventbus.Registry, opts demoOptions) error {
	bus := reg.Create(opts.namespace)
	fmt.Fprintf(out, "命名空间: %s\n", bus.Namespace())

	// 订阅之前发布
	for i := 1; i <= 3; i++ {
		if err := bus.Trigger("click", i); err != nil {
			return err
		}
	}
	if err := resizeTopic.Trigger(bus, size{W: 80, H: 24}); err != nil {
		return err
	}
	fmt.Fprintf(out, "离线消息: %d\n", bus.Pending())

	show := func(evt eventbus.Event) error {
		tag := "实时"
		if evt.Replayed {
			tag = "回放"
		}
		fmt.Fprintf(out, "  [%s] %s/%s %v\n", tag, evt.Namespace, evt.Name, evt.Payload)
		return nil
	}

	clicks := eventbus.NewListener(show)
	if err := bus.Listen("click", clicks, eventbus.WithReplayMode(opts.replay)); err != nil {
		return err
	}

	// 缓冲已关闭，之后的订阅只收到实时消息
	if _, err := resizeTopic.Listen(bus, func(s size) error {
		fmt.Fprintf(out, "  [实时] %s/resize %dx%d\n", bus.Namespace(), s.W, s.H)
		return nil
	}); err != nil {
		return err
	}

	if err := bus.Trigger("click", 4); err != nil {
		return err
	}
	if err := resizeTopic.Trigger(bus, size{W: 120, H: 40}); err != nil {
		return err
	}

	bus.Remove("click", clicks)
	if err := bus.Trigger("click", 5); err != nil {
		return err
	}

	fmt.Fprintf(out, "消息名: %s\n", strings.Join(bus.Names(), ", "))
	fmt.Fprintf(out, "命名空间列表: %s\n", strings.Join(reg.Namespaces(), ", "))
	return nil
}

// printMetrics 打印指标快照
func printMetrics(out io.Writer, c *metrics.Collector) error {
	if c == nil {
		fmt.Fprintln(out, "指标: 已关闭")
		return nil
	}

	s := c.Snapshot()
	fmt.Fprintf(out, "指标: triggered=%d dispatched=%d buffered=%d replayed=%d discarded=%d\n",
		s.Triggered, s.Dispatched, s.Buffered, s.Replayed, s.Discarded)

	pr := prometheus.NewRegistry()
	if err := pr.Register(c); err != nil {
		return fmt.Errorf("注册指标失败: %w", err)
	}
	families, err := pr.Gather()
	if err != nil {
		return fmt.Errorf("采集指标失败: %w", err)
	}

	lines := make([]string, 0, len(families))
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		lines = append(lines, fmt.Sprintf("  %s %g", mf.GetName(), total))
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
