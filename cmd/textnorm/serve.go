package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_text_normalization/internal/core/scoring"
	"github.com/baditaflorin/go_text_normalization/internal/httpserver"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
	"github.com/baditaflorin/go_text_normalization/internal/warmup"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve normalization and evaluation over HTTP",
		Args:  cobra.NoArgs,
		RunE:  executeServe,
	}
	cmd.Flags().Int("port", 0, "HTTP server port (overrides server.port)")
	return cmd
}

func executeServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Close()

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		a.cfg.Server.Port = port
	}

	p, err := a.pipeline()
	if err != nil {
		return err
	}
	pool, err := a.engines()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	warmCfg := warmup.DefaultWarmupConfig()
	warmCfg.Languages = a.cfg.Run.WarmLanguages
	wm := warmup.NewManager(a.logger, warmCfg)
	wm.RegisterFactory(pool)
	wm.RegisterNormalizer(p)
	if err := wm.WarmUp(ctx); err != nil {
		return err
	}

	sc := a.cfg.Server
	server, err := httpserver.New(httpserver.Config{
		Port:            sc.Port,
		ReadTimeout:     sc.ReadTimeout,
		WriteTimeout:    sc.WriteTimeout,
		MaxRequestSize:  sc.MaxRequestSize,
		DefaultLanguage: a.cfg.Run.DefaultLanguage,
	}, p, pool, func() ([]ports.Scorer, error) {
		return scoring.DefaultScorers(a.logger)
	}, a.logger)
	if err != nil {
		return err
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		a.logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			a.logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	if err := server.ListenAndServe(); err != nil {
		stop()
		<-idleConnsClosed
		return err
	}
	<-idleConnsClosed
	a.logger.Info("Server stopped")
	return nil
}
