package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/history"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/i18n"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rec history.Recorder = history.Nop{}
	if cfg.HistoryEnabled() {
		db, err := history.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open history db")
		}
		rec = db
	}
	defer rec.Close()

	tr, err := i18n.New(i18n.DefaultTable())
	if err != nil {
		log.Fatal().Err(err).Msg("load translations")
	}

	mem := store.NewMemoryStore()
	defer mem.Close()

	srv := httpserver.New(httpserver.Options{
		Store:            mem,
		Source:           wordSource(cfg),
		Daily:            words.NewDaily(cfg.DailySalt),
		History:          rec,
		Translator:       tr,
		Tokens:           httpserver.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		ClientOrigin:     cfg.ClientOrigin,
		MaxWrongAttempts: cfg.MaxWrongAttempts,
		HandlerTimeout:   cfg.WordAPITimeout*time.Duration(cfg.WordAPIRetries) + 5*time.Second,
		BaseContext:      ctx,
	})
	go srv.Sweep(ctx, time.Minute, cfg.SessionIdleTTL)

	hs := &http.Server{Addr: ":" + cfg.Port, Handler: srv.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Str("words", cfg.WordSource).Bool("history", cfg.HistoryEnabled()).Msg("starting hangman server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// wordSource builds the Source selected by WORD_SOURCE.
func wordSource(cfg config.Config) words.Source {
	switch cfg.WordSource {
	case config.SourceEmbedded:
		return words.NewEmbedded()
	case config.SourceDaily:
		return words.NewDaily(cfg.DailySalt)
	}
	api := words.NewClient(cfg.WordAPIURL,
		words.WithTimeout(cfg.WordAPITimeout),
		words.WithRetries(cfg.WordAPIRetries),
	)
	if cfg.OfflineFallback {
		return words.Fallback{Primary: api, Secondary: words.NewEmbedded()}
	}
	return api
}
