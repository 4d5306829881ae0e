package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	auditUseCase "github.com/allisson/mediport/internal/audit/usecase"
)

// RunCleanAuditLogs deletes audit logs older than days, or only counts them with dryRun.
func RunCleanAuditLogs(
	ctx context.Context,
	auditLogUseCase auditUseCase.AuditLogUseCase,
	logger *slog.Logger,
	writer io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	logger.Info("cleaning audit logs",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	count, err := auditLogUseCase.DeleteOlderThan(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to delete audit logs: %w", err)
	}

	if err := writeCleanResult(writer, "audit log(s)", count, days, dryRun, format); err != nil {
		return err
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

// writeCleanResult reports a retention cleanup in text or JSON.
func writeCleanResult(writer io.Writer, noun string, count int64, days int, dryRun bool, format string) error {
	if format == FormatJSON {
		return writeJSON(writer, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		})
	}

	var err error
	if dryRun {
		_, err = fmt.Fprintf(writer, "Dry-run mode: Would delete %d %s older than %d day(s)\n", count, noun, days)
	} else {
		_, err = fmt.Fprintf(writer, "Successfully deleted %d %s older than %d day(s)\n", count, noun, days)
	}
	return err
}
