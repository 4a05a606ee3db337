// Package session runs the interactive read-classify-report loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/labelguard/internal/model"
)

// ErrPanic marks a request that panicked and was recovered.
var ErrPanic = errors.New("request panicked")

// Runner processes one operator input.
type Runner interface {
	Run(ctx context.Context, text string) (*model.WorkflowState, error)
}

// Options configures a Session.
type Options struct {
	Out     io.Writer
	Logger  *zap.Logger
	LogFile string // Named in the error notice shown to the operator
}

// Session reads inputs until the operator quits, the input ends or the
// context is cancelled. Requests are handled strictly one at a time.
type Session struct {
	runner  Runner
	console *Console
	out     io.Writer
	logger  *zap.Logger
	logFile string
}

// New creates a session
func New(runner Runner, console *Console, opts Options) *Session {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.LogFile == "" {
		opts.LogFile = "the log"
	}

	return &Session{
		runner:  runner,
		console: console,
		out:     opts.Out,
		logger:  opts.Logger,
		logFile: opts.LogFile,
	}
}

// Run loops until exit. A failing request never ends the loop; only exit
// commands, end of input and cancellation do. It returns an error only when
// reading the input itself fails.
func (s *Session) Run(ctx context.Context) error {
	for {
		input, err := s.console.Ask(ctx, "Input: ")
		if err != nil {
			return s.stop(ctx, err)
		}

		trimmed := strings.TrimSpace(input)
		if isExit(trimmed) {
			fmt.Fprintln(s.out, "Exiting application.")
			s.logger.Info("application terminated by user")
			return nil
		}
		if trimmed == "" {
			continue
		}

		s.logger.Info("input received", zap.String("text", input))

		state, err := s.process(ctx, input)
		switch {
		case err == nil:
			s.report(state)
		case interrupted(ctx, err):
			return s.stop(ctx, err)
		default:
			s.fail(input, state, err)
		}
	}
}

// process runs one request, turning a panic into an error so the loop
// survives it.
func (s *Session) process(ctx context.Context, input string) (state *model.WorkflowState, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered panic",
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()),
			)
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return s.runner.Run(ctx, input)
}

func (s *Session) report(state *model.WorkflowState) {
	label := state.FinalLabelOr("N/A")

	if state.FallbackInvoked {
		fmt.Fprintf(s.out, "Final Label: %s (Corrected via user clarification)\n\n", label)
	} else {
		fmt.Fprintf(s.out, "Final Label: %s (High confidence)\n\n", label)
	}

	s.logger.Info("final decision",
		zap.String("request_id", state.RequestID),
		zap.String("text", state.InputText),
		zap.String("prediction", state.PredictionOr("N/A")),
		zap.String("confidence", FormatConfidence(state.ConfidenceOr(0))),
		zap.Bool("fallback_invoked", state.FallbackInvoked),
		zap.String("final_label", label),
	)
}

func (s *Session) fail(input string, state *model.WorkflowState, err error) {
	fields := []zap.Field{zap.Error(err), zap.String("text", input)}
	if state != nil {
		fields = append(fields,
			zap.String("request_id", state.RequestID),
			zap.String("stage", string(state.Stage)),
		)
	}

	s.logger.Error("unexpected error while processing input", fields...)
	fmt.Fprintf(s.out, "An unexpected error occurred. Check %s for details.\n\n", s.logFile)
}

// stop ends the loop after an input read failed or the request was
// interrupted.
func (s *Session) stop(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil, errors.Is(err, context.Canceled):
		fmt.Fprintln(s.out, "\nExiting application.")
		s.logger.Info("application interrupted by user")
		return nil
	case errors.Is(err, ErrInputClosed):
		fmt.Fprintln(s.out, "\nExiting application.")
		s.logger.Info("input closed")
		return nil
	default:
		s.logger.Error("reading input failed", zap.Error(err))
		return fmt.Errorf("read input: %w", err)
	}
}

// interrupted reports whether err ends the session rather than the request.
// Only the console can end the input; io.EOF raised by a classifier is an
// ordinary request failure.
func interrupted(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, ErrInputClosed)
}

func isExit(input string) bool {
	return strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit")
}

// FormatConfidence renders a confidence with four decimal places
func FormatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', 4, 64)
}
