package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"blockcraft/internal/config"
	"blockcraft/internal/game"
	"blockcraft/internal/logging"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML settings file")
	flag.Parse()

	log := logging.Default()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Errorf("config %s: %v", *configPath, err)
		os.Exit(1)
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(cfg)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	if err := g.Run(ctx); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
