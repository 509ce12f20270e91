package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathanglassman/paas-product-page/internal/config"
	"github.com/jonathanglassman/paas-product-page/internal/handler"
	"github.com/jonathanglassman/paas-product-page/internal/render"
	"github.com/jonathanglassman/paas-product-page/internal/router"
	"github.com/jonathanglassman/paas-product-page/internal/zendesk"
)

// App is the product page server.
type App struct {
	cfg     *config.Config
	httpSrv *http.Server
}

// New wires the application from configuration.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	renderer := render.New(cfg.TemplateDir, cfg.AppEnv == "development")
	tickets := zendesk.NewClient(cfg.Zendesk.URL, cfg.Zendesk.User, cfg.Zendesk.Token, cfg.Zendesk.Fake)

	pages := handler.NewPageHandler(renderer, cfg.AssetDir)
	formsHandler := handler.NewFormHandler(renderer, tickets, cfg.Zendesk.GroupID)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(pages, formsHandler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &App{cfg: cfg, httpSrv: httpSrv}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	log.Printf("HTTP server listening on %s", a.httpSrv.Addr)
	if a.cfg.Zendesk.Fake {
		log.Printf("  FAKE_ZENDESK set: tickets are logged, not sent")
	}

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
