package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timebank/internal/config"
	"timebank/internal/dataset"
	"timebank/internal/http/handlers"
	applog "timebank/internal/log"
	"timebank/internal/services"
	"timebank/internal/store"
)

const usage = `usage:
  timebank                          serve the catalog
  timebank import <json> <sqlite>   load a dataset file into a sqlite catalog`

func main() {
	cfg := config.Load()

	if len(os.Args) > 1 {
		if os.Args[1] != "import" || len(os.Args) != 4 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		n, err := dataset.ImportFile(context.Background(), os.Args[2], os.Args[3])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("imported %d listings into %s (serve with DATASET_SOURCE=sqlite:%s)\n", n, os.Args[3], os.Args[3])
		return
	}

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			out = io.MultiWriter(os.Stdout, f)
			log.SetOutput(out)
		}
	}

	opts := applog.Options{Env: cfg.Env, Level: cfg.LogLevel, Out: out}
	if cfg.Fluent.Enabled {
		fl, err := applog.NewFluent(cfg.Fluent.Host, cfg.Fluent.Port)
		if err != nil {
			log.Printf("[warn] fluent disabled: %v", err)
		} else {
			defer fl.Close()
			opts.Fluent = fl
		}
	}
	applog.Setup(opts)

	listings := store.New()
	catalog := services.NewCatalogService(listings)
	app := handlers.NewApp(cfg, catalog)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// One-shot dataset load; the defaults are served until it settles.
	src, closeSrc, err := dataset.Open(cfg.DatasetSource, cfg.DatasetTimeout)
	if err != nil {
		applog.Warn(nil, "store.load.failed", err, map[string]any{"source": cfg.DatasetSource})
	} else {
		go func() {
			defer closeSrc()
			catalog.LoadDataset(ctx, src)
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			applog.Error(nil, "server.shutdown", err, nil)
		}
	}()

	applog.Info(nil, "server.start", map[string]any{"port": cfg.Port})
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
