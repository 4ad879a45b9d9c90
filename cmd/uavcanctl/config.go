package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// appConfig holds the parsed CLI configuration.
type appConfig struct {
	cmd         string
	decodeHex   string
	serialDev   string
	baud        int
	readTimeout time.Duration
	logFormat   string
	logLevel    string
	metricsAddr string
	nodeID      int
	priority    int
	typeID      int
}

func parseFlags(args []string) (*appConfig, bool, error) {
	cfg := &appConfig{}
	fs := flag.NewFlagSet("uavcanctl", flag.ContinueOnError)
	serialDev := fs.String("serial", "/dev/ttyUSB0", "Serial device path (stream subcommand)")
	baud := fs.Int("baud", 115200, "Serial baud rate")
	readTimeout := fs.Duration("read-timeout", 50*time.Millisecond, "Serial read timeout")
	logFormat := fs.String("log-format", "text", "Log format: text|json")
	logLevel := fs.String("log-level", "info", "Log level: debug|info|warn|error")
	metricsAddr := fs.String("metrics-addr", "", "Metrics HTTP listen address (e.g., :9100); empty disables")
	nodeID := fs.Int("node-id", 1, "Source node ID (1..127) for encode demos")
	priority := fs.Int("priority", 16, "Transfer priority (0..31) for encode demos")
	typeID := fs.Int("type-id", 341, "Message type ID for encode demos")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	setFlags := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = struct{}{} })

	rest := fs.Args()
	if len(rest) > 0 {
		cfg.cmd = rest[0]
	}
	if len(rest) > 1 {
		cfg.decodeHex = rest[1]
	}
	cfg.serialDev = *serialDev
	cfg.baud = *baud
	cfg.readTimeout = *readTimeout
	cfg.logFormat = *logFormat
	cfg.logLevel = *logLevel
	cfg.metricsAddr = *metricsAddr
	cfg.nodeID = *nodeID
	cfg.priority = *priority
	cfg.typeID = *typeID

	if err := applyEnvOverrides(cfg, setFlags); err != nil {
		return nil, *showVersion, err
	}
	if err := cfg.validate(); err != nil {
		return nil, *showVersion, err
	}
	return cfg, *showVersion, nil
}

// validate performs basic semantic validation of the parsed configuration.
func (c *appConfig) validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	switch c.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log-format: %s", c.logFormat)
	}
	switch c.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level: %s", c.logLevel)
	}
	if c.baud <= 0 {
		return fmt.Errorf("baud must be > 0 (got %d)", c.baud)
	}
	if c.readTimeout <= 0 {
		return fmt.Errorf("read-timeout must be > 0")
	}
	if c.nodeID < 1 || c.nodeID > 127 {
		return fmt.Errorf("node-id must be in 1..127 (got %d)", c.nodeID)
	}
	if c.priority < 0 || c.priority > 31 {
		return fmt.Errorf("priority must be in 0..31 (got %d)", c.priority)
	}
	return nil
}

// applyEnvOverrides maps UAVCANCTL_* environment variables to config fields
// unless a corresponding flag was explicitly set (flag wins over env).
func applyEnvOverrides(c *appConfig, set map[string]struct{}) error {
	var firstErr error
	get := func(k string) (string, bool) { v, ok := os.LookupEnv(k); return strings.TrimSpace(v), ok }

	if _, ok := set["serial"]; !ok {
		if v, ok := get("UAVCANCTL_SERIAL"); ok && v != "" {
			c.serialDev = v
		}
	}
	if _, ok := set["baud"]; !ok {
		if v, ok := get("UAVCANCTL_BAUD"); ok && v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.baud = n
			} else if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("invalid UAVCANCTL_BAUD: %w", err)
			}
		}
	}
	if _, ok := set["log-format"]; !ok {
		if v, ok := get("UAVCANCTL_LOG_FORMAT"); ok && v != "" {
			c.logFormat = v
		}
	}
	if _, ok := set["log-level"]; !ok {
		if v, ok := get("UAVCANCTL_LOG_LEVEL"); ok && v != "" {
			c.logLevel = v
		}
	}
	if _, ok := set["metrics-addr"]; !ok {
		if v, ok := get("UAVCANCTL_METRICS"); ok {
			c.metricsAddr = v
		}
	}
	return firstErr
}
