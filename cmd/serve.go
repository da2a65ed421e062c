package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ai_content_generator/config"
	"ai_content_generator/generator"
	"ai_content_generator/handoff"
	"ai_content_generator/pages"
	"ai_content_generator/server"
	"ai_content_generator/settings"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts.cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	backend, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	provider, err := generator.NewProvider(cfg.ProviderSettings())
	if err != nil {
		return err
	}
	srv, err := server.New(pages.Deps{
		Settings: settings.NewStore(backend),
		Drafts:   handoff.NewHub(backend),
		Provider: provider,
	}, server.Options{GenerateTimeout: cfg.Provider.Timeout})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{Addr: cfg.ServerAddr, Handler: srv.Routes()}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logrus.Info("[SERVER] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("[SERVER] shutdown failed: %v", err)
		}
	}()

	logrus.Infof("[SERVER] Starting web server on %s (storage=%s provider=%s)", cfg.ServerAddr, cfg.Storage.Backend, cfg.Provider.Name)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
