// Command uavcanctl is a small demonstration CLI over the uavcan codec
// core. It has three subcommands:
//
//	uavcanctl encode          build and serialize a NodeStatus, print frame ID + hex
//	uavcanctl decode <hex>    deserialize a hex NodeStatus payload and print it
//	uavcanctl stream          continuously decode NodeStatus frames off a serial port
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/canflux/uavcan/internal/metrics"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, showVersion, err := parseFlags(args)
	if showVersion {
		fmt.Printf("uavcanctl %s (commit %s, built %s)\n", version, commit, date)
		if err != nil {
			return 1
		}
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "uavcanctl:", err)
		return 2
	}

	l := setupLogger(cfg.logFormat, cfg.logLevel)
	metrics.InitBuildInfo(version, commit, date)

	var metricsSrv *http.Server
	if cfg.metricsAddr != "" {
		metricsSrv = metrics.StartHTTP(cfg.metricsAddr)
		metrics.SetReadinessFunc(func() bool { return true })
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := dispatch(ctx, cfg, l)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(context.Background())
	}
	if runErr != nil {
		l.Error("command_failed", "cmd", cfg.cmd, "error", runErr)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, cfg *appConfig, l *slog.Logger) error {
	switch cfg.cmd {
	case "", "encode":
		return runEncode(cfg, l)
	case "decode":
		if cfg.decodeHex == "" {
			return fmt.Errorf("uavcanctl: decode requires a hex argument, e.g. %q", "uavcanctl decode <hex>")
		}
		return runDecode(cfg.decodeHex, l)
	case "stream":
		return runStream(ctx, cfg, l)
	default:
		return fmt.Errorf("uavcanctl: unknown subcommand %q (want encode|decode|stream)", cfg.cmd)
	}
}
