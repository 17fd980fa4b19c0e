package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/showsplit/showsplit/app/api"
	"github.com/showsplit/showsplit/app/cfg"
	"github.com/showsplit/showsplit/app/database"
	"github.com/showsplit/showsplit/app/feed"
	"github.com/showsplit/showsplit/app/scheduler"
	"github.com/showsplit/showsplit/app/shows"
)

func main() {
	// A .env file is optional; flags and real env vars win.
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if appCfg.FeedURL == "" {
		fmt.Fprintln(os.Stderr, "Error: --feed-url (or FEED_URL) is required")
		os.Exit(1)
	}

	registry := shows.NewRegistry()

	if appCfg.ShowsFile != "" {
		n, err := registry.LoadSeedFile(appCfg.ShowsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		slog.Info("Show registry seeded from file", "path", appCfg.ShowsFile, "shows", n)
	}

	var store feed.ShowStore
	if appCfg.DBPath != "" {
		db, err := database.Open(appCfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		repo := database.NewShowRepository(db)
		records, err := repo.LoadShows()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, rec := range records {
			registry.Register(rec.Name, rec.Aliases...)
		}
		slog.Info("Show registry restored from database", "path", appCfg.DBPath, "shows", len(records))

		store = repo
	}

	processor := feed.NewProcessor(registry)
	writer := feed.NewWriter(appCfg.OutputDir)
	runner := feed.NewRunner(processor, writer, store)

	if !appCfg.Serve {
		runOnce(runner)
		return
	}

	serve(appCfg, runner)
}

// runOnce is the default batch mode: fetch, classify, write, exit.
func runOnce(runner *feed.Runner) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := runner.Refresh(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processed %d items into %d episodes across %d shows (%d skipped, %d unsorted, %d newly registered)\n",
		result.Stats.ItemsTotal, result.Stats.Episodes, result.Stats.Shows,
		result.Stats.Skipped, result.Stats.Unsorted, result.Stats.AutoRegistered)
}

func serve(appCfg *cfg.Cfg, runner *feed.Runner) {
	feedScheduler := scheduler.NewScheduler(runner, time.Duration(appCfg.RefreshInterval)*time.Second)
	feedScheduler.Start()
	defer feedScheduler.Stop()

	handler := api.NewHandler(runner)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
