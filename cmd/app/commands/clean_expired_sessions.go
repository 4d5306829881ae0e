package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	sessionUseCase "github.com/allisson/mediport/internal/session/usecase"
)

// RunCleanExpiredSessions deletes gateway sessions that expired more than days ago.
func RunCleanExpiredSessions(
	ctx context.Context,
	useCase sessionUseCase.SessionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	logger.Info("cleaning expired sessions",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	count, err := useCase.CleanExpired(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	if err := writeCleanResult(writer, "expired session(s)", count, days, dryRun, format); err != nil {
		return err
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}
