// Package main provides the outbreak teaching CLI: herd-immunity metrics,
// exponential spread, vaccine impact and transmission trees.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/outbreak/internal/config"

	outbreakcmd "github.com/katalvlaran/outbreak/internal/cmd/outbreak"
)

func main() {
	cfg, err := outbreakcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(config.Report(os.Stderr, err, outbreakcmd.ErrUsage))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := outbreakcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		os.Exit(config.Report(os.Stderr, err, outbreakcmd.ErrUsage))
	}
}
