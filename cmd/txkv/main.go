package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"txkv/pkg/metrics"
	"txkv/pkg/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	demo := flag.Bool("demo", false, "run the reference call sequence and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := initConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	initLogger(&cfg)

	var (
		opts  []store.Option
		stats *metrics.Registry
	)
	if cfg.Store.Metrics {
		stats = metrics.NewRegistry()
		opts = append(opts, store.WithMetrics(stats))
	}

	s := store.New(opts...)
	r := newREPL(s, stats, os.Stdout, cfg.REPL)

	if *demo {
		if err := runDemo(r); err != nil {
			slog.Error("demo failed", "error", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("txkv started. Type commands (or 'HELP' for help):")

	done := make(chan error, 1)
	go func() {
		done <- r.Run(os.Stdin)
	}()

	select {
	case err := <-done:
		if err != nil {
			slog.Error("repl stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		fmt.Println()
	}

	if id, ok := s.Active(); ok {
		slog.Info("discarding open transaction on exit", "tx", id, "pending", s.Pending())
	}
	fmt.Println("txkv stopped")
}
