package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"favicons/config"
	"favicons/watcher"
	"favicons/web"
)

func main() {
	fmt.Println("Favicons - Favicon and App Icon Generator")
	fmt.Println("=========================================")

	configPath := flag.String("config", "", "path to config.yaml (defaults plus FAVICONS_* environment when empty)")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// Load config
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loaded config: listening on %s, upload limit %dMB", cfg.Addr(), cfg.Server.MaxUploadMB)

	server := web.NewServer(cfg)

	// Start favicon server in background
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Favicon server failed: %v", err)
		}
	}()

	var w *watcher.Watcher
	if cfg.Watch && *configPath != "" {
		w, err = watcher.New(*configPath, server.SetConfig)
		if err != nil {
			log.Fatalf("Failed to create watcher: %v", err)
		}
		if err := w.Start(); err != nil {
			log.Fatalf("Failed to start watcher: %v", err)
		}
	}

	log.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	if w != nil {
		if err := w.Stop(); err != nil {
			log.Printf("Error stopping watcher: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv()
	}
	return config.Load(path)
}
