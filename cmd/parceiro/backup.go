package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/parceiro/internal/cli"
	"github.com/Veraticus/parceiro/internal/storage"
	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage record store backups",
		Long: `Create, list, restore, and delete copies of the record store.

'parceiro seed' takes an automatic backup before replacing existing records;
the five most recent automatic backups are kept.`,
		Example: `  # Back up before loading new data
  parceiro backup create --tag antes-da-importacao

  # List all backups
  parceiro backup list

  # Restore a backup
  parceiro backup restore antes-da-importacao`,
	}

	cmd.AddCommand(createBackupCmd())
	cmd.AddCommand(listBackupsCmd())
	cmd.AddCommand(restoreBackupCmd())
	cmd.AddCommand(deleteBackupCmd())

	return cmd
}

// withBackups opens the store and hands its backup manager to fn.
func withBackups(cmd *cobra.Command, fn func(*storage.BackupManager) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	bm, err := store.Backups()
	if err != nil {
		return err
	}
	return fn(bm)
}

func createBackupCmd() *cobra.Command {
	var tag string
	var description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackups(cmd, func(bm *storage.BackupManager) error {
				info, err := bm.Create(cmd.Context(), tag, description)
				if err != nil {
					return fmt.Errorf("failed to create backup: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
					fmt.Sprintf("Backup %s criado (%s)", cli.TitleStyle.Render(info.ID), formatFileSize(info.FileSize))))
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Backup name (generated if not provided)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description of the backup")

	return cmd
}

func listBackupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all backups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackups(cmd, func(bm *storage.BackupManager) error {
				backups, err := bm.List(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(backups) == 0 {
					_, err := fmt.Fprintln(out, cli.SubtleStyle.Render("Nenhum backup encontrado. Use 'parceiro backup create' para criar um."))
					return err
				}

				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("ID"),
					cli.HeaderStyle.Render("Criado em"),
					cli.HeaderStyle.Render("Tamanho"),
					cli.HeaderStyle.Render("Leads/Vendas/Comissões"),
					cli.HeaderStyle.Render("Descrição")); err != nil {
					return fmt.Errorf("failed to write header: %w", err)
				}
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					strings.Repeat("─", 24),
					strings.Repeat("─", 16),
					strings.Repeat("─", 8),
					strings.Repeat("─", 22),
					strings.Repeat("─", 20)); err != nil {
					return fmt.Errorf("failed to write separator: %w", err)
				}

				for _, b := range backups {
					id := b.ID
					if b.IsAuto {
						id += " (auto)"
					}
					if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d/%d\t%s\n",
						id,
						b.CreatedAt.Format("02/01/2006 15:04"),
						formatFileSize(b.FileSize),
						b.RowCounts["leads"], b.RowCounts["sales"], b.RowCounts["commissions"],
						b.Description); err != nil {
						return fmt.Errorf("failed to write backup row: %w", err)
					}
				}
				return w.Flush()
			})
		},
	}
}

func restoreBackupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore the record store from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withBackups(cmd, func(bm *storage.BackupManager) error {
				ctx := cmd.Context()

				if _, err := bm.Get(ctx, id); err != nil {
					return fmt.Errorf("backup %q: %w", id, err)
				}

				if !force {
					// A manual backup, so pruning can never remove the one
					// being restored.
					tag := "antes-restore-" + time.Now().Format("2006-01-02-150405")
					info, err := bm.Create(ctx, tag, "Dados antes de restaurar "+id)
					if err != nil {
						return err
					}
					slog.Info("Saved current data", "id", info.ID)
				}

				if err := bm.Restore(ctx, id); err != nil {
					return fmt.Errorf("failed to restore backup: %w", err)
				}

				_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Backup "+cli.TitleStyle.Render(id)+" restaurado"))
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the automatic backup of the current data")

	return cmd
}

func deleteBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackups(cmd, func(bm *storage.BackupManager) error {
				if err := bm.Delete(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to delete backup: %w", err)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Backup "+args[0]+" apagado"))
				return err
			})
		},
	}
}
