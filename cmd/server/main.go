package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	_ "snakes-ladders/docs"
	httpapi "snakes-ladders/internal/api/http"
	"snakes-ladders/internal/api/ws"
	"snakes-ladders/internal/config"
	"snakes-ladders/internal/logging"
	"snakes-ladders/internal/random"
	"snakes-ladders/internal/room"
	"snakes-ladders/internal/store"
)

const (
	pruneEvery   = time.Minute
	emptyRoomTTL = 10 * time.Minute
	shutdownWait = 10 * time.Second
)

// @title Snakes & Ladders Room Server API
// @version 1.0
// @description Room listing and game rules for the websocket snakes and ladders server
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("set up logging")
	}
	gin.SetMode(gin.ReleaseMode)

	seed := uint64(cfg.Seed)
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg.Rules, random.NewSeeder(seed))
	hub := ws.NewHub(rm, cfg.MaxNameLength)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(rm, hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go prune(ctx, rm)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Uint64("seed", seed).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// prune drops rooms created over HTTP that nobody ever joined.
func prune(ctx context.Context, rm *room.Manager) {
	t := time.NewTicker(pruneEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := rm.PruneEmpty(emptyRoomTTL); n > 0 {
				log.Info().Int("rooms", n).Msg("pruned empty rooms")
			}
		}
	}
}
