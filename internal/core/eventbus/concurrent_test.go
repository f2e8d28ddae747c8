package eventbus

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 并发测试
// ============================================================================

// TestConcurrent_TriggerAndListen 测试并发 Trigger 与首次 Listen
//
// 每条消息要么进入离线缓冲后被回放，要么在关闭缓冲后直接分发，不会丢失也不会重复。
func TestConcurrent_TriggerAndListen(t *testing.T) {
	bus := NewBus()

	var received atomic.Int64
	l := pkgif.NewListener(func(pkgif.Event) error {
		received.Add(1)
		return nil
	})

	numTriggers := 10
	perTrigger := 100

	var wg sync.WaitGroup
	wg.Add(numTriggers + 1)

	for i := 0; i < numTriggers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perTrigger; j++ {
				_ = bus.Trigger("A", j)
			}
		}()
	}

	go func() {
		defer wg.Done()
		assert.NoError(t, bus.Listen("A", l))
	}()

	wg.Wait()

	assert.Equal(t, int64(numTriggers*perTrigger), received.Load())
	assert.False(t, bus.Armed())
	assert.Equal(t, 0, bus.Pending())
}

// TestConcurrent_RegistryCreate 测试并发创建同名命名空间
func TestConcurrent_RegistryCreate(t *testing.T) {
	reg := NewRegistry(DefaultConfig())

	numGoroutines := 20
	buses := make([]*Bus, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			buses[i] = reg.Create("shared")
		}(i)
	}
	wg.Wait()

	for _, b := range buses {
		assert.Same(t, buses[0], b)
	}
	assert.Equal(t, []string{"shared"}, reg.Namespaces())
}

// TestConcurrent_ListenRemove 测试并发注册与移除
func TestConcurrent_ListenRemove(t *testing.T) {
	bus := NewBus(WithBuffering(false))

	numGoroutines := 10
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			l := pkgif.NewListener(func(pkgif.Event) error { return nil })
			for j := 0; j < 50; j++ {
				_ = bus.Listen("A", l)
				_ = bus.Trigger("A", j)
				bus.Remove("A", l)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, bus.ListenerCount("A"))
}
