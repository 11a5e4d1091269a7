package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"VolumeWatch/internal/collector"
	"VolumeWatch/internal/config"
	"VolumeWatch/internal/scheduler"
	"VolumeWatch/internal/server"
	"VolumeWatch/internal/session"
	"VolumeWatch/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] VolumeWatch starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	cache := collector.NewCachedFetcher(fetcher, time.Duration(cfg.Cache.TTLMinutes)*time.Minute, cfg.Debug)
	col := collector.NewCollector(cache, cfg.Debug)

	// Init store
	st, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] init sqlite store: %v", err)
	}
	defer st.Close()
	if err := st.Seed(cfg.Seed.Username, cfg.Seed.Password, cfg.Seed.Symbols); err != nil {
		log.Fatalf("[FATAL] seed user: %v", err)
	}

	// Init sessions
	sessions := session.NewManager(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	// Init scheduler
	sched := scheduler.NewScheduler(cache, sessions)
	if err := sched.RegisterAll(cfg.Cache.SweepCron, cfg.Session.PurgeCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init HTTP server
	srv := server.NewServer(st, sessions, col, cache, cfg.Debug)
	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: srv.Handler(),
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] VolumeWatch is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] VolumeWatch stopped")
}
