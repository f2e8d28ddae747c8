package eventbus

import (
	"sort"
	"sync"

	"github.com/dep2p/go-eventbus/config"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// 配置
// ============================================================================

// Config Registry 配置
type Config struct {
	// DefaultNamespace 默认命名空间名称
	DefaultNamespace string

	// Buffering 新建总线是否启用离线缓冲
	Buffering bool

	// ReplayMode 新建总线的默认回放模式
	ReplayMode pkgif.ReplayMode
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		DefaultNamespace: config.DefaultNamespace,
		Buffering:        true,
		ReplayMode:       pkgif.ReplayAll,
	}
}

// ConfigFromUnified 从统一配置创建 Registry 配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}

	c := Config{
		DefaultNamespace: cfg.Bus.DefaultNamespace,
		Buffering:        cfg.Bus.Buffering,
		ReplayMode:       pkgif.ParseReplayMode(cfg.Bus.ReplayMode),
	}
	if c.DefaultNamespace == "" {
		c.DefaultNamespace = config.DefaultNamespace
	}
	return c
}

// ============================================================================
// Registry 实现
// ============================================================================

// Registry 命名空间注册表
//
// 每个命名空间名称在 Registry 的生命周期内只对应一条 Bus，首次访问时创建。
// Registry 自身的 Listen/Trigger/Remove/One 作用于默认命名空间。
type Registry struct {
	mu         sync.Mutex
	cfg        Config
	busOpts    []Option
	namespaces map[string]*Bus
}

// NewRegistry 创建命名空间注册表
//
// opts 会应用到 Registry 创建的每一条 Bus 上（例如时钟与指标记录器）。
func NewRegistry(cfg Config, opts ...Option) *Registry {
	if cfg.DefaultNamespace == "" {
		cfg.DefaultNamespace = config.DefaultNamespace
	}
	return &Registry{
		cfg:        cfg,
		busOpts:    opts,
		namespaces: make(map[string]*Bus),
	}
}

// Create 返回命名空间对应的总线，不存在时创建
//
// namespace 为空时返回默认命名空间的总线。
func (r *Registry) Create(namespace string) *Bus {
	if namespace == "" {
		namespace = r.cfg.DefaultNamespace
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.namespaces[namespace]; ok {
		return b
	}

	opts := make([]Option, 0, len(r.busOpts)+3)
	opts = append(opts, r.busOpts...)
	opts = append(opts,
		WithNamespace(namespace),
		WithBuffering(r.cfg.Buffering),
		WithDefaultReplay(r.cfg.ReplayMode),
	)

	b := NewBus(opts...)
	r.namespaces[namespace] = b

	logger.Debug("创建命名空间", "namespace", namespace, "buffering", r.cfg.Buffering)
	return b
}

// Default 返回默认命名空间的总线
func (r *Registry) Default() *Bus {
	return r.Create("")
}

// DefaultNamespace 返回默认命名空间名称
func (r *Registry) DefaultNamespace() string {
	return r.cfg.DefaultNamespace
}

// Namespaces 返回已创建的命名空间（已排序）
func (r *Registry) Namespaces() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.namespaces))
	for ns := range r.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// ============================================================================
// 默认命名空间便利方法
// ============================================================================

// Listen 在默认命名空间注册监听者
func (r *Registry) Listen(name string, l *pkgif.Listener, opts ...pkgif.ListenOption) error {
	return r.Default().Listen(name, l, opts...)
}

// Trigger 在默认命名空间触发消息
func (r *Registry) Trigger(name string, payload any) error {
	return r.Default().Trigger(name, payload)
}

// Remove 在默认命名空间移除监听者
func (r *Registry) Remove(name string, ls ...*pkgif.Listener) {
	r.Default().Remove(name, ls...)
}

// One 在默认命名空间替换监听者
func (r *Registry) One(name string, l *pkgif.Listener, opts ...pkgif.ListenOption) error {
	return r.Default().One(name, l, opts...)
}

// 确保实现 Bus 接口
var (
	_ pkgif.Bus = (*Bus)(nil)
	_ pkgif.Bus = (*Registry)(nil)
	_ pkgif.Bus = (*Emitter)(nil)
)
