package eventbus

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params Fx 模块输入参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config   `optional:"true"`
	Reporter   metrics.Reporter `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Registry   *Registry
	DefaultBus pkgif.Bus `name:"default_bus"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("eventbus",
		fx.Provide(ProvideRegistry),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideRegistry 提供 Registry 实例
func ProvideRegistry(p Params) Result {
	reg := NewRegistry(ConfigFromUnified(p.UnifiedCfg), WithReporter(p.Reporter))
	return Result{
		Registry:   reg,
		DefaultBus: reg,
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC       fx.Lifecycle
	Registry *Registry
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("事件总线启动", "default_namespace", input.Registry.DefaultNamespace())
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("事件总线停止", "namespaces", len(input.Registry.Namespaces()))
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "eventbus"
	// Description 模块描述
	Description = "带命名空间与离线缓冲的进程内事件总线"
)
