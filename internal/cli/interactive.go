package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/labelguard/internal/cache"
	"github.com/ppiankov/labelguard/internal/classify"
	"github.com/ppiankov/labelguard/internal/logging"
	"github.com/ppiankov/labelguard/internal/model"
	"github.com/ppiankov/labelguard/internal/session"
	"github.com/ppiankov/labelguard/internal/workflow"
)

// ErrStartup is returned after the operator has already been told why the
// program cannot start. Callers should exit without printing it again.
var ErrStartup = errors.New("startup failed")

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return interactive(ctx, cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout(), classify.New)
}

// interactive is runInteractive minus process concerns (config loading, log
// file, signals) so it can be driven from tests.
func interactive(ctx context.Context, cfg *model.Config, logger *zap.Logger, in io.Reader, out io.Writer, newClassifier func(classify.Config) (classify.Classifier, error)) error {
	fmt.Fprintln(out, "--- labelguard: confidence-gated classification ---")
	logger.Info("application starting",
		zap.String("provider", cfg.Classifier.Provider),
		zap.Float64("threshold", cfg.Workflow.Threshold),
		zap.Strings("labels", cfg.Classifier.Labels),
	)

	classifier, err := buildClassifier(ctx, cfg, newClassifier)
	if err != nil {
		logger.Error("failed to initialize classifier. exiting", zap.Error(err))
		fmt.Fprintln(out, "Fatal: Could not load the classifier. Please check the configuration and your connection.")
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}
	logger.Info("classifier ready", zap.String("provider", classifier.Name()), zap.String("model", cfg.Classifier.Model))

	console := session.NewConsole(in, out)
	wf := workflow.New(classifier, console, workflow.Options{
		Threshold: cfg.Workflow.Threshold,
		MaxTokens: cfg.Workflow.MaxTokens,
		Labels:    cfg.LabelSet(),
		Out:       out,
	})

	fmt.Fprintln(out, "\nClassifier ready. Waiting for input.")
	fmt.Fprintln(out, "Type 'exit' or 'quit' to terminate.")
	fmt.Fprintln(out)

	s := session.New(wf, console, session.Options{
		Out:     out,
		Logger:  logger,
		LogFile: cfg.Log.File,
	})
	return s.Run(ctx)
}

// buildClassifier creates the configured classifier, checks that it answers
// and layers rate limiting and caching on top.
func buildClassifier(ctx context.Context, cfg *model.Config, newClassifier func(classify.Config) (classify.Classifier, error)) (classify.Classifier, error) {
	base, err := newClassifier(classify.ConfigFromModel(cfg))
	if err != nil {
		return nil, err
	}

	checkCtx, cancel := context.WithTimeout(ctx, cfg.Classifier.Timeout)
	defer cancel()
	if !base.IsAvailable(checkCtx) {
		return nil, fmt.Errorf("%w: provider %s did not pass its availability check", classify.ErrUnavailable, base.Name())
	}

	var c classify.Classifier = classify.NewRateLimited(base, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	if cfg.Cache.Enabled {
		c = classify.NewCached(c, cache.New(cfg.Cache), cfg.Cache.TTL, cfg.Classifier.Model)
	}

	return c, nil
}
