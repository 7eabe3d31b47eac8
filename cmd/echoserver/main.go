package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"echoprobe/internal/echo"
	"echoprobe/internal/shared/config"
	"echoprobe/internal/shared/logger"
)

// Listens on the client's configured endpoint so the two can be run against
// each other by hand.
func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	flag.Parse()

	iniPath := filepath.Join(*configDir, "echoprobe.ini")
	cfg := config.Default()
	if err := config.LoadIni(cfg, iniPath); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Invalid config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ln, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Address()).Msg("Failed to listen")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	if err := echo.New(cfg.ReadBufferSize).Serve(ln); err != nil {
		logger.Error().Err(err).Msg("Echo server stopped")
	}
}
