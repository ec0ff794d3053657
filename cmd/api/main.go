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

	"github.com/hporwanda/ishema-chatbot/internal/config"
	"github.com/hporwanda/ishema-chatbot/internal/handler"
	"github.com/hporwanda/ishema-chatbot/internal/policy"
	chatservice "github.com/hporwanda/ishema-chatbot/internal/service/chat"
	"github.com/hporwanda/ishema-chatbot/internal/service/completion"
	"github.com/hporwanda/ishema-chatbot/internal/service/embedding"
	"github.com/hporwanda/ishema-chatbot/internal/service/retrieval"
	"github.com/hporwanda/ishema-chatbot/pkg/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		logx.Warn().Err(err).Msg("no .env file loaded, continuing with system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load configuration")
	}
	logx.Init(cfg.Server.Environment)

	pol := policy.Default()
	embedder := embedding.NewClient(cfg.OpenAI)
	retriever := retrieval.NewClient(cfg.Pinecone, pol.MetadataKeys)
	completer := completion.NewClient(cfg.OpenAI)

	orchestrator := chatservice.NewService(pol, embedder, retriever, completer)

	router := handler.NewRouter(handler.Deps{
		Orchestrator:  orchestrator,
		StreamDefault: cfg.OpenAI.Stream,
		Embedder:      embedder,
		Matcher:       retriever,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr, err := serverCfg.Addr()
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid listen address")
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logx.Info().Str("addr", addr).Msg("ishema chatbot backend listening")
	if err := runServer(ctx, srv); err != nil {
		logx.Fatal().Err(err).Msg("server error")
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
