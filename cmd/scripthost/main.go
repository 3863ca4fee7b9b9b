// scripthost - standalone entry point
//
// The scripthost library normally lives inside a scripting-engine plugin,
// but this binary exposes its host-environment services directly for
// debugging and scripting:
//   - run a command line with a timeout and print its captured output
//   - print the diagnostics line (host library, plugin version, RSS)
//   - write the effective configuration back to disk
//
// Configuration is loaded from /etc/scripthost/config.yaml (or the path
// given by -config); a missing file means defaults.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hostbridge/scripthost/internal/config"
	"github.com/hostbridge/scripthost/internal/env"
	"github.com/hostbridge/scripthost/internal/logging"
	"github.com/hostbridge/scripthost/internal/version"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to configuration file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	writeConfig := flag.Bool("write-config", false, "write the effective configuration to the config path and exit")
	showInfo := flag.Bool("info", false, "print the diagnostics line and exit")
	runCommand := flag.String("run", "", "command line to execute")
	timeout := flag.Duration("timeout", 0, "timeout for -run (default: command_timeout_ms from config)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to load configuration from %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	logger := logging.SetupLogger(cfg.LogLevel)

	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			logger.Error("failed to write config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("wrote configuration", slog.String("path", *configPath))
		os.Exit(0)
	}

	environment := env.New(logging.WithComponent(logger, "env"), env.HostLib{
		Name:    cfg.HostLibName,
		Version: func() string { return cfg.HostLibVersion },
	})

	ctx := context.Background()

	if *showInfo {
		fmt.Println(environment.Info(ctx))
		os.Exit(0)
	}

	if *runCommand != "" {
		d := *timeout
		if d == 0 {
			d = time.Duration(cfg.CommandTimeoutMS) * time.Millisecond
		}

		output, errText := environment.Popen(ctx, *runCommand, d)
		if errText != "" {
			fmt.Fprintln(os.Stderr, errText)
			os.Exit(1)
		}
		fmt.Print(output)
		os.Exit(0)
	}

	flag.Usage()
	os.Exit(2)
}
