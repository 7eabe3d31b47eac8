package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"echoprobe/internal/client"
	"echoprobe/internal/shared/config"
	"echoprobe/internal/shared/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns 1 only when the configuration is unusable. Once a connection
// has been attempted the outcome is printed and run returns 0.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configDir := fs.String("configdir", "configs", "Path to config directory")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	iniPath := filepath.Join(*configDir, "echoprobe.ini")

	// 1. 加载配置, 文件不存在时使用默认值
	cfg := config.Default()
	if err := config.LoadIni(cfg, iniPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		return 1
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "Fatal: Invalid config: %v\n", err)
		return 1
	}

	// 2. 初始化日志系统
	if err := logger.InitWithWriter(cfg.LogConf, stderr); err != nil {
		fmt.Fprintf(stderr, "Fatal: Failed to initialize logger: %v\n", err)
		return 1
	}

	runner, err := client.NewRunner(cfg.ClientConf, stdout)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create client")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. 单次收发; 结果已经打印, 无论成功与否都正常退出
	runner.Run(ctx)
	return 0
}
