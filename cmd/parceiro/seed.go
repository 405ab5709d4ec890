package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carrega os dados de demonstração",
		Long: `Substitui todos os registros pelos dados de demonstração.

Antes de apagar registros existentes, um backup automático é criado (veja
'parceiro backup list'). Use --no-backup para pular essa etapa.`,
		RunE: runSeed,
	}

	cmd.Flags().Bool("no-backup", false, "não cria backup antes de substituir os dados")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	noBackup, _ := cmd.Flags().GetBool("no-backup")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	if !noBackup {
		existing, err := store.ListLeads(ctx)
		if err != nil {
			return fmt.Errorf("failed to inspect existing records: %w", err)
		}
		if len(existing) > 0 {
			bm, err := store.Backups()
			if err != nil {
				return err
			}
			info, err := bm.AutoBackup(ctx, "seed")
			if err != nil {
				return err
			}
			slog.Info("Created automatic backup", "id", info.ID, "size", formatFileSize(info.FileSize))
		}
	}

	progress, finish := progressReporter("Carregando dados de demonstração...")
	err = store.SeedWithProgress(ctx, fixtures.Demo(), func(done, total int) { progress(done, total) })
	finish()
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	slog.Info("Demo data loaded", "database", store.Path())
	return nil
}
