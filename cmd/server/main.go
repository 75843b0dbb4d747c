package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg := loadConfig()

	service, err := newEngineService(cfg.Engine)
	if err != nil {
		log.Fatalf("[server] engine setup failed: %v", err)
	}
	if err := service.loadCache(cfg.CachePath); err != nil {
		log.Printf("[server] cache restore skipped: %v", err)
	} else if entries := service.cacheStatus().Entries; entries > 0 {
		log.Printf("[server] restored %d cache entries from %s", entries, cfg.CachePath)
	}

	var persistOnce sync.Once
	persistOnShutdown := func(reason string) {
		persistOnce.Do(func() {
			log.Printf("[server] persisting cache on %s", reason)
			if err := service.saveCache(cfg.CachePath); err != nil {
				log.Printf("[server] cache persist failed: %v", err)
			}
		})
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("[server] panic recovered in main: %v", recovered)
			persistOnShutdown("panic")
		}
	}()
	defer persistOnShutdown("exit")

	sessions := newSessionManager(cfg.Engine)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/api/decide", service.handleDecide)
	r.Post("/api/evaluate", service.handleEvaluate)
	r.Get("/api/cache", service.handleCacheStatus)
	r.Delete("/api/cache", service.handleCacheClear)
	r.Get("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"active": sessions.count()})
	})
	r.Get("/ws/play", sessions.handlePlaySocket)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("[server] listening on %s (board %dx%d, depth %d)",
			server.Addr, cfg.Engine.BoardSize, cfg.Engine.BoardSize, cfg.Engine.MaxSearchDepth)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[server] listen failed: %v", err)
		}
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	<-sigCtx.Done()
	log.Printf("[server] shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] shutdown error: %v", err)
	}
	persistOnShutdown("shutdown")
}
