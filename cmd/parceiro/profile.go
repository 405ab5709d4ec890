package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/parceiro/internal/actions"
	"github.com/Veraticus/parceiro/internal/cli"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Mostra seu perfil e os dados de pagamento",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			profile, err := store.GetProfile(ctx)
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			return writeProfile(cmd.OutOrStdout(), *profile)
		},
	}
}

type profileLine struct {
	label string
	value string
}

func writeProfile(w io.Writer, p model.Profile) error {
	lines := []profileLine{
		{"Nome Completo", p.FullName},
		{"E-mail", p.Email},
		{"Telefone", p.Phone},
		{"Tipo de Conta", string(p.Payment.AccountType)},
	}
	switch {
	case p.Payment.AccountType.IsPix():
		lines = append(lines, profileLine{"Chave PIX", p.Payment.PixKey})
	case p.Payment.AccountType.IsBankAccount():
		lines = append(lines,
			profileLine{"Banco", p.Payment.Bank},
			profileLine{"Agência", p.Payment.Agency},
			profileLine{"Conta com Dígito", p.Payment.Account},
		)
	}
	lines = append(lines,
		profileLine{"Nome Completo do Titular", p.Payment.HolderName},
		profileLine{"CPF do Titular", p.Payment.HolderCPF},
	)

	if _, err := fmt.Fprintf(w, "%s\n\n", cli.TitleStyle.Render("Meu Perfil")); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", cli.SubtleStyle.Render(l.label+":"), l.value); err != nil {
			return err
		}
	}

	if missing := actions.MissingPaymentFields(p.Payment); len(missing) > 0 {
		_, err := fmt.Fprintf(w, "\n%s\n", cli.FormatWarning(
			"Para receber suas comissões, preencha: "+strings.Join(missing, ", ")))
		return err
	}
	return nil
}
