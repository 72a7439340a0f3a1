package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_text_normalization/internal/adapters/dataset"
	"github.com/baditaflorin/go_text_normalization/internal/adapters/metrics"
	"github.com/baditaflorin/go_text_normalization/internal/core/orchestrator"
	"github.com/baditaflorin/go_text_normalization/internal/core/pipeline"
	"github.com/baditaflorin/go_text_normalization/internal/core/scoring"
	"github.com/baditaflorin/go_text_normalization/internal/warmup"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a dataset and write the generated outputs",
		Args:  cobra.NoArgs,
		RunE:  executeRun,
	}
	cmd.Flags().String("input", "", "Dataset file (JSON array of records)")
	cmd.Flags().String("output", "", "Result file")
	return cmd
}

func executeRun(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, err := metrics.NewRecorder()
	if err != nil {
		return err
	}
	p, err := a.pipeline(pipeline.WithObserver(recorder.StageRewrote))
	if err != nil {
		return err
	}
	pool, err := a.engines()
	if err != nil {
		return err
	}

	warmCfg := warmup.DefaultWarmupConfig()
	warmCfg.Languages = a.cfg.Run.WarmLanguages
	wm := warmup.NewManager(a.logger, warmCfg)
	wm.RegisterFactory(pool)
	wm.RegisterNormalizer(p)
	if err := wm.WarmUp(ctx); err != nil {
		return err
	}

	scorers, err := scoring.DefaultScorers(a.logger)
	if err != nil {
		return err
	}
	runner, err := orchestrator.New(p, pool, scorers,
		orchestrator.WithDefaultLanguage(a.cfg.Run.DefaultLanguage),
		orchestrator.WithLogger(a.logger),
		orchestrator.WithRecorder(recorder),
	)
	if err != nil {
		return err
	}

	records, err := dataset.FileSource{Path: a.cfg.Run.Input}.Load(ctx)
	if err != nil {
		return err
	}
	report, results, err := runner.Run(ctx, records)
	if err != nil {
		return err
	}
	if err := (dataset.FileSink{Path: a.cfg.Run.Output}).Write(ctx, results); err != nil {
		return err
	}

	a.logger.Info("Run report",
		"run_id", report.RunID,
		"records", report.Records,
		"duration", report.Duration,
		"output", a.cfg.Run.Output,
	)

	out := cmd.OutOrStdout()
	if wer, ok := report.ScoreByName(scoring.WERName); ok {
		fmt.Fprintf(out, "WER: %v\n", wer.Value)
	}
	if chrf, ok := report.ScoreByName(scoring.CHRFName); ok {
		fmt.Fprintf(out, "CHRF: %v\n", chrf.Value)
	}

	if a.cfg.Run.MetricsFile != "" {
		if err := recorder.WriteTextfile(a.cfg.Run.MetricsFile); err != nil {
			return err
		}
	}
	return nil
}
