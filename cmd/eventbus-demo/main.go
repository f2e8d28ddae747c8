// Package main 提供 go-eventbus 演示命令行入口
//
// 程序在指定命名空间上先发布后订阅，打印回放结果与指标快照。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	eventbus "github.com/dep2p/go-eventbus"
	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("eventbus/cmd")

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
var (
	configFile = flag.String("config", "", "配置文件路径（.json/.yaml）")
	namespace  = flag.String("namespace", "", "演示使用的命名空间（默认使用配置中的默认命名空间）")
	replay     = flag.String("replay", "", "首次订阅的回放模式 (all/last)")
	logLevel   = flag.String("log-level", "", "日志级别 (debug/info/warn/error)")
	fxLog      = flag.Bool("fx-log", false, "输出 Fx 依赖注入日志")

	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	flag.Parse()

	if *showVersion {
		fmt.Fprintln(out, eventbus.VersionInfo())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "警告: %v\n", err)
	}
	defer closeLog()

	opts := demoOptions{
		namespace: *namespace,
		replay:    eventbus.ParseReplayMode(*replay),
	}
	if *replay == "" {
		opts.replay = eventbus.ReplayDefault
	}

	var (
		reg       *eventbus.Registry
		collector *metrics.Collector
	)
	app := fx.New(
		fx.Supply(cfg),
		eventbus.Module(),
		fx.Populate(&reg, &collector),
		fxLogger(*fxLog),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("停止失败", "err", err)
		}
	}()

	logger.Info("运行演示", "version", eventbus.Version, "namespace", opts.namespace)

	if err := runDemo(out, reg, opts); err != nil {
		return err
	}
	return printMetrics(out, collector)
}

// loadConfig 加载配置
//
// 优先级（从高到低）：命令行参数、环境变量（EVENTBUS_ 前缀）、配置文件、默认值。
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, fmt.Errorf("加载配置文件失败: %w", err)
		}
		cfg = loaded
	}

	config.ApplyEnv(cfg, nil)

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging 按配置设置日志输出，返回的函数用于关闭日志文件
func setupLogging(c config.LogConfig) (func(), error) {
	noop := func() {}

	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return noop, err
	}

	if c.File == "" {
		log.SetLevel(level)
		return noop, nil
	}

	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: 用户指定的日志路径
	if err != nil {
		log.SetLevel(level)
		return noop, fmt.Errorf("打开日志文件失败: %w", err)
	}
	log.SetOutputWithLevel(f, level)
	return func() { _ = f.Close() }, nil
}

// fxLogger 返回 Fx 日志选项
func fxLogger(verbose bool) fx.Option {
	if !verbose {
		return fx.NopLogger
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		zl = zap.NewNop()
	}
	return fx.WithLogger(func() fxevent.Logger {
		return &fxevent.ZapLogger{Logger: zl}
	})
}
