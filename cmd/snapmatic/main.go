package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xingbase/snapmatic"
	"github.com/xingbase/snapmatic/config"
	"github.com/xingbase/snapmatic/logger"
)

type Options struct{}

var options Options

var parser = flags.NewParser(&options, flags.Default)

// loadConfig merges env config with per-command flag overrides.
func loadConfig(src string, dst string) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if src != "" {
		cfg.SrcPath = src
	}
	if dst != "" {
		cfg.DstPath = dst
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) logger.ILogger {
	level := logger.LogInfo
	if cfg.Debug {
		level = logger.LogDebug
	}
	return logger.NewStdOutLogger(level)
}

func newConverter(src string, dst string) (*snapmatic.Converter, *config.Config, error) {
	cfg, err := loadConfig(src, dst)
	if err != nil {
		return nil, nil, err
	}

	conv := snapmatic.NewConverter(snapmatic.Config{
		SrcPath: cfg.SrcPath,
		DstPath: cfg.DstPath,
		Prefix:  cfg.Prefix,
		Log:     newLogger(cfg),
	})

	return conv, cfg, nil
}

// reportResults prints the per-file outcomes and returns an error when any
// file in the batch failed.
func reportResults(results []snapmatic.Result) error {
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("FAIL  %s: %v\n", r.Name, r.Err)
		} else {
			fmt.Printf("OK    %s\n", r.Name)
		}
	}

	if failed := snapmatic.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}

	return nil
}

func main() {
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			fmt.Fprintln(os.Stdout)
			parser.WriteHelp(os.Stdout)
			os.Exit(1)
		}
	}
}
