package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func linkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Mostra seu link de indicação",
		Long: `Mostra seu link de indicação.

Use seu link exclusivo para direcionar clientes potenciais para nossa página
de qualificação automatizada.`,
		Example: `  # Copiar o link para a área de transferência
  parceiro link copy

  # Abrir o link no navegador
  parceiro link open`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.ReferralLink())
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "copy",
		Short: "Copia o link para a área de transferência",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc, err := newConsoleActions(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			return svc.CopyReferralLink(cmd.Context(), cfg.ReferralLink())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "open",
		Short: "Abre o link no navegador",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc, err := newConsoleActions(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			return svc.OpenLink(cfg.ReferralLink())
		},
	})

	return cmd
}
