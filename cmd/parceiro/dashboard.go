package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/parceiro/internal/actions"
	"github.com/Veraticus/parceiro/internal/browser"
	"github.com/Veraticus/parceiro/internal/clipboard"
	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/tui"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/spf13/cobra"
)

// notificationBuffer is how many toasts may wait for the TUI.
const notificationBuffer = 16

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Abre o painel interativo",
		RunE:  runDashboard,
	}

	cmd.Flags().Bool("mouse", false, "enable mouse support")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	mouse, _ := cmd.Flags().GetBool("mouse")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	// The TUI owns the terminal from here on.
	level, format, err := loggingSettings()
	if err != nil {
		return err
	}
	closeLogs, err := common.RedirectLogs(cfg.LogFile, level, format)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLogs(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "failed to close log file:", err)
		}
		common.SetupLogger(level, format)
	}()

	exp, err := newExporter(ctx, cfg, nil)
	if err != nil {
		return err
	}

	ch := notify.NewChannel(notificationBuffer)
	svc := actions.New(ch, clipboard.System{}, browser.System{}, exp)

	slog.Info("Starting dashboard", "database", cfg.DatabasePath, "export", cfg.ExportTarget)

	return tui.Run(ctx,
		tui.WithStore(store),
		tui.WithTheme(themes.GetTheme(cfg.Theme)),
		tui.WithActions(svc),
		tui.WithNotifications(ch),
		tui.WithReferralLink(cfg.ReferralLink()),
		tui.WithPartnerName(cfg.PartnerName),
		tui.WithMouse(mouse),
	)
}
