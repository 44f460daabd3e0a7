// Package heartbeat serves the liveness endpoint. It touches no bot
// state; the two routes answer with static JSON.
package heartbeat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"barkeep/internal/version"
)

// RunServer starts the heartbeat HTTP server and respects ctx for graceful
// shutdown. It blocks until the server exits; run in a goroutine.
func RunServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{
			"status":  "ok",
			"app":     version.AppName,
			"version": version.AppVersion,
		})
	})

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down heartbeat server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Heartbeat server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		// Log the error but do NOT call log.Fatal — that would kill the whole process.
		log.Printf("[ERR] Heartbeat server exited: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[WARN] Failed to write heartbeat response: %v", err)
	}
}
