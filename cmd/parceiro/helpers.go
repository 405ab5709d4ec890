package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/parceiro/internal/actions"
	"github.com/Veraticus/parceiro/internal/browser"
	"github.com/Veraticus/parceiro/internal/clipboard"
	"github.com/Veraticus/parceiro/internal/config"
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/report"
	"github.com/Veraticus/parceiro/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
)

// loadConfig resolves the configuration from viper.
func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper())
}

// initStorage opens the record store and brings its schema up to date.
func initStorage(ctx context.Context, cfg config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// newExporter builds the configured export target. Progress is only
// reported by the xlsx target.
func newExporter(ctx context.Context, cfg config.Config, progress report.ProgressFunc) (report.Exporter, error) {
	switch cfg.ExportTarget {
	case config.ExportSheets:
		exp, err := report.NewSheetsExporter(ctx, cfg.Sheets, slog.Default())
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Sheets exporter: %w", err)
		}
		return exp, nil
	default:
		opts := []report.XLSXOption{report.WithLogger(slog.Default())}
		if progress != nil {
			opts = append(opts, report.WithProgress(progress))
		}
		return report.NewXLSXExporter(cfg.ExportDir, opts...), nil
	}
}

// newConsoleActions builds the side-effect service for non-interactive
// commands. Notifications are printed to stderr.
func newConsoleActions(ctx context.Context, cfg config.Config, progress report.ProgressFunc) (*actions.Service, error) {
	exp, err := newExporter(ctx, cfg, progress)
	if err != nil {
		return nil, err
	}
	return actions.New(notify.NewConsole(os.Stderr), clipboard.System{}, browser.System{}, exp), nil
}

// progressReporter draws a progress bar on stderr, created on the first
// call once the total is known.
func progressReporter(description string) (report.ProgressFunc, func()) {
	var bar *progressbar.ProgressBar

	update := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}

	finish := func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}
	return update, finish
}

func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
