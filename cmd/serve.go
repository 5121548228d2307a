package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"lawscraper/internal/api"
	"lawscraper/internal/api/handler"
	"lawscraper/internal/chat"
	"lawscraper/internal/config"
	"lawscraper/internal/docstore"
	"lawscraper/internal/scraper"
	"lawscraper/pkg/llm"
	"lawscraper/pkg/llm/gemini"
	"lawscraper/pkg/logger"
	"lawscraper/pkg/scrapeprovider/firecrawl"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupDeps constructs the service graph: the FireCrawl provider, the
// in-memory document store, the crawl orchestrator and the chat service.
// Chat runs without a model when no Gemini key is configured and rejects
// requests at call time.
func setupDeps(ctx context.Context, cfg *config.Config) api.Deps {
	provider := firecrawl.New(
		&http.Client{Timeout: cfg.Firecrawl.Timeout},
		cfg.Firecrawl.APIKey,
		cfg.Firecrawl.BaseURL,
	)

	store := docstore.New(docstore.NewOptions(cfg))

	var model llm.Client
	if cfg.Gemini.APIKey != "" {
		model = gemini.New(
			&http.Client{Timeout: cfg.Gemini.Timeout},
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			"",
		)
	} else {
		logger.Warn(ctx, "no Gemini API key configured, chat endpoint is disabled")
	}

	return api.Deps{
		Deps: handler.Deps{
			Scraper: scraper.New(provider, store, scraper.NewOptions(cfg)),
			Chat:    chat.New(store, model),
		},
	}
}

func setupServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(setupDeps(ctx, cfg), api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			stopWebserver := setupServer(ctx, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
