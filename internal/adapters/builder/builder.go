// Package builder runs the external static site build step.
package builder

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/jsamuelsen/motivation-page/internal/domain"
	"github.com/jsamuelsen/motivation-page/internal/platform/logging"
)

// defaultTimeout bounds a build run when none is configured.
const defaultTimeout = 2 * time.Minute

// Config configures the subprocess builder.
type Config struct {
	// Command is the program to run (e.g., "python3").
	Command string

	// Args are passed to the command (e.g., the build script path).
	Args []string

	// Dir is the working directory for the build. Empty means the
	// service's working directory.
	Dir string

	// Timeout bounds a single build run.
	Timeout time.Duration
}

// Subprocess implements ports.SiteBuilder by shelling out to an
// external build program. One run per call, never retried; a failed
// run surfaces as domain.ErrRegeneration with the combined output.
type Subprocess struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a subprocess builder.
func New(cfg Config, logger *slog.Logger) *Subprocess {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Subprocess{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "builder.Subprocess")),
	}
}

// Regenerate runs the build command to completion.
func (b *Subprocess) Regenerate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	logger := logging.FromContext(ctx).With(
		slog.String("command", b.cfg.Command),
		slog.String("args", strings.Join(b.cfg.Args, " ")),
	)

	start := time.Now()

	cmd := exec.CommandContext(ctx, b.cfg.Command, b.cfg.Args...)
	cmd.Dir = b.cfg.Dir

	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	if err != nil {
		logger.Error("site regeneration failed",
			slog.Duration("duration", duration),
			slog.String("output", string(output)),
			slog.Any("error", err),
		)
		return domain.NewRegenerationError(string(output), err)
	}

	logger.Info("site regenerated",
		slog.Duration("duration", duration),
	)

	return nil
}
