package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sicet/internal/config"
	"sicet/internal/server"
	"sicet/internal/util"
)

func main() {
	port := flag.Int("port", 0, "listen port, overrides config.toml")
	dev := flag.Bool("dev", false, "development mode: verbose router log, no browser launch")
	flag.Parse()

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("Cannot load config.toml, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	} else if !info.PortSpecified {
		log.Printf("No port configured, using default %d", cfg.Server.Port)
	}
	if *dev {
		cfg.Server.DevMode = true
	}

	fmt.Println("==========================================")
	fmt.Println("  SICET - Control de Nomina y Horas Extra")
	fmt.Println("==========================================")
	fmt.Printf("  Puerto:  %d\n", cfg.Server.Port)
	fmt.Printf("  Periodo: %s\n", cfg.Ingest.PeriodToken)
	fmt.Println("==========================================")

	srv := server.NewServer(cfg)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	log.Printf("Listening on %s", url)

	if !cfg.Server.DevMode {
		// Give the listener a moment before pointing a browser at it.
		time.Sleep(300 * time.Millisecond)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			log.Printf("Cannot open browser, visit %s manually: %v", url, err)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")
}
