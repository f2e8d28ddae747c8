package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Registry 测试
// ============================================================================

// TestRegistry_CreateIdempotent 测试同名命名空间返回同一条总线
func TestRegistry_CreateIdempotent(t *testing.T) {
	reg := NewRegistry(DefaultConfig())

	ns1 := reg.Create("ns1")
	assert.Same(t, ns1, reg.Create("ns1"))
	assert.NotSame(t, ns1, reg.Create("ns2"))
	assert.Equal(t, "ns1", ns1.Namespace())

	assert.Equal(t, []string{"ns1", "ns2"}, reg.Namespaces())
}

// TestRegistry_DefaultNamespace 测试空名称与便利方法作用于默认命名空间
func TestRegistry_DefaultNamespace(t *testing.T) {
	reg := NewRegistry(DefaultConfig())

	assert.Same(t, reg.Create(""), reg.Create(config.DefaultNamespace))
	assert.Same(t, reg.Default(), reg.Create(""))
	assert.Equal(t, config.DefaultNamespace, reg.DefaultNamespace())

	r := &recorder{}
	l := r.listener()
	require.NoError(t, reg.Listen("A", l))
	require.NoError(t, reg.Create("default").Trigger("A", 1))
	assert.Equal(t, []any{1}, r.payloads())

	require.NoError(t, reg.One("A", (&recorder{}).listener()))
	assert.Equal(t, 1, reg.Default().ListenerCount("A"))

	reg.Remove("A")
	assert.Equal(t, 0, reg.Default().ListenerCount("A"))
}

// TestRegistry_Isolation 测试命名空间之间互不影响
func TestRegistry_Isolation(t *testing.T) {
	reg := NewRegistry(DefaultConfig())

	ns1 := reg.Create("namespace1")
	ns2 := reg.Create("namespace2")

	r1, r2 := &recorder{}, &recorder{}
	require.NoError(t, ns1.Listen("click", r1.listener()))
	require.NoError(t, ns1.Trigger("click", 1))

	// ns2 仍处于离线缓冲状态
	assert.True(t, ns2.Armed())
	require.NoError(t, ns2.Trigger("click", 2))
	assert.Empty(t, r2.events)

	require.NoError(t, ns2.Listen("click", r2.listener()))

	assert.Equal(t, []any{1}, r1.payloads())
	assert.Equal(t, []any{2}, r2.payloads())
	assert.Equal(t, "namespace2", r2.events[0].Namespace)

	// 默认命名空间同样独立
	assert.True(t, reg.Default().Armed())
}

// TestRegistry_SharedState 测试同名访问共享缓冲与监听者
func TestRegistry_SharedState(t *testing.T) {
	reg := NewRegistry(DefaultConfig())

	require.NoError(t, reg.Create("ns1").Trigger("A", 1))

	r := &recorder{}
	require.NoError(t, reg.Create("ns1").Listen("A", r.listener()))
	assert.Equal(t, []any{1}, r.payloads())
	assert.False(t, reg.Create("ns1").Armed())
}

// TestRegistry_Config 测试配置作用于新建总线
func TestRegistry_Config(t *testing.T) {
	reg := NewRegistry(Config{
		DefaultNamespace: "app",
		Buffering:        false,
		ReplayMode:       pkgif.ReplayLast,
	})

	assert.Equal(t, "app", reg.Default().Namespace())
	assert.False(t, reg.Create("ui").Armed())

	// 默认命名空间名称为空时回落到保留名称
	reg2 := NewRegistry(Config{Buffering: true})
	assert.Equal(t, config.DefaultNamespace, reg2.DefaultNamespace())
}

// TestRegistry_BusOptions 测试总线选项应用到所有命名空间
func TestRegistry_BusOptions(t *testing.T) {
	counter := metrics.NewCounter()
	reg := NewRegistry(DefaultConfig(), WithReporter(counter))

	require.NoError(t, reg.Trigger("A", 1))
	require.NoError(t, reg.Create("ns").Trigger("A", 1))

	assert.Equal(t, int64(2), counter.Snapshot().Buffered)
}

// TestConfigFromUnified 测试从统一配置转换
func TestConfigFromUnified(t *testing.T) {
	assert.Equal(t, DefaultConfig(), ConfigFromUnified(nil))

	cfg := config.NewConfig()
	cfg.Bus.DefaultNamespace = "app"
	cfg.Bus.Buffering = false
	cfg.Bus.ReplayMode = config.ReplayModeLast

	assert.Equal(t, Config{
		DefaultNamespace: "app",
		Buffering:        false,
		ReplayMode:       pkgif.ReplayLast,
	}, ConfigFromUnified(cfg))

	cfg.Bus.DefaultNamespace = ""
	cfg.Bus.ReplayMode = ""
	c := ConfigFromUnified(cfg)
	assert.Equal(t, config.DefaultNamespace, c.DefaultNamespace)
	assert.Equal(t, pkgif.ReplayAll, c.ReplayMode)
}
