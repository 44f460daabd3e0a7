package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "barkeep/internal/command/ask"
	_ "barkeep/internal/command/core"
	_ "barkeep/internal/command/poll"
	_ "barkeep/internal/command/rps"
	_ "barkeep/internal/command/trivia"

	"barkeep/internal/config"
	"barkeep/internal/discord"
	"barkeep/internal/heartbeat"
	v "barkeep/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	go heartbeat.RunServer(ctx, cfg.HeartbeatAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
