package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/parceiro/internal/cli"
	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/tui/components"
	"github.com/spf13/cobra"
)

func materialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Lista os materiais de apoio",
		RunE:  runMaterialsList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "download <id>",
		Short: "Baixa um material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaterialAction(cmd, args[0], false)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "preview <id>",
		Short: "Abre a visualização online de um material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaterialAction(cmd, args[0], true)
		},
	})

	return cmd
}

func runMaterialsList(cmd *cobra.Command, _ []string) error {
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

	materials, err := store.ListMaterials(ctx)
	if err != nil {
		return fmt.Errorf("failed to load materials: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s\n\n", cli.TitleStyle.Render("Materiais de Apoio")); err != nil {
		return err
	}
	if len(materials) == 0 {
		_, err := fmt.Fprintln(out, cli.SubtleStyle.Render(components.MaterialsEmptyMessage))
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Material"),
		cli.HeaderStyle.Render("Tipo"),
		cli.HeaderStyle.Render("Preview")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 2),
		strings.Repeat("─", 30),
		strings.Repeat("─", 5),
		strings.Repeat("─", 7)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, m := range materials {
		preview := "não"
		if m.HasPreview() {
			preview = "sim"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", m.ID, m.Title, m.Kind, preview); err != nil {
			return fmt.Errorf("failed to write material row: %w", err)
		}
	}
	return tw.Flush()
}

func runMaterialAction(cmd *cobra.Command, rawID string, preview bool) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("ID de material inválido: %s", rawID), err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	materials, err := store.ListMaterials(ctx)
	if err != nil {
		return fmt.Errorf("failed to load materials: %w", err)
	}
	material, err := findMaterial(materials, id)
	if err != nil {
		return err
	}

	svc, err := newConsoleActions(ctx, cfg, nil)
	if err != nil {
		return err
	}
	if preview {
		return svc.PreviewMaterial(material)
	}
	return svc.DownloadMaterial(material)
}

func findMaterial(materials []model.Material, id int64) (model.Material, error) {
	for _, m := range materials {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Material{}, common.NewUserError(
		fmt.Sprintf("Material %d não encontrado.", id),
		fmt.Errorf("material %d: %w", id, common.ErrNotFound),
	)
}
