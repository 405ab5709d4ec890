package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/parceiro/internal/cli"
	"github.com/Veraticus/parceiro/internal/format"
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/report"
	"github.com/Veraticus/parceiro/internal/storage"
	"github.com/Veraticus/parceiro/internal/tui/components"
	"github.com/Veraticus/parceiro/internal/views"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listOptions are the filters shared by the list commands.
type listOptions struct {
	Search string
	Status string
	Type   string
	Period string
	Export bool
}

// listCommand describes one list page as a command.
type listCommand[T listview.Record] struct {
	load       func(context.Context, *storage.SQLiteStorage) ([]T, error)
	definition func(views.Clock) listview.Definition[T]
	footer     func(io.Writer, []T) error
	use        string
	short      string
	kind       report.Kind
}

func leadsCmd() *cobra.Command {
	return newListCmd(listCommand[model.Lead]{
		use:        "leads",
		short:      "Lista seus leads indicados",
		kind:       report.KindLeads,
		definition: func(views.Clock) listview.Definition[model.Lead] { return views.Leads() },
		load: func(ctx context.Context, s *storage.SQLiteStorage) ([]model.Lead, error) {
			return s.ListLeads(ctx)
		},
	})
}

func salesCmd() *cobra.Command {
	return newListCmd(listCommand[model.Sale]{
		use:        "sales",
		short:      "Lista suas vendas fechadas",
		kind:       report.KindSales,
		definition: views.Sales,
		load: func(ctx context.Context, s *storage.SQLiteStorage) ([]model.Sale, error) {
			return s.ListSales(ctx)
		},
	})
}

func commissionsCmd() *cobra.Command {
	return newListCmd(listCommand[model.CommissionEntry]{
		use:        "commissions",
		short:      "Mostra o extrato de comissões",
		kind:       report.KindCommissions,
		definition: views.Commissions,
		load: func(ctx context.Context, s *storage.SQLiteStorage) ([]model.CommissionEntry, error) {
			return s.ListCommissions(ctx)
		},
		footer: writeCommissionTotals,
	})
}

func newListCmd[T listview.Record](lc listCommand[T]) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   lc.use,
		Short: lc.short,
		Long: lc.short + `.

Os filtros aceitam os mesmos valores do painel interativo, por exemplo
--status "Em Negociação" ou --period "Mês Atual". Com --export, as linhas
exibidas são gravadas no destino configurado em export.target.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, lc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "texto buscado nos nomes e empresas")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "filtra pelo status")
	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "filtra pelo tipo")
	cmd.Flags().StringVarP(&opts.Period, "period", "p", "", "filtra pelo período")
	cmd.Flags().BoolVarP(&opts.Export, "export", "e", false, "exporta as linhas exibidas")

	return cmd
}

func runList[T listview.Record](cmd *cobra.Command, lc listCommand[T], opts listOptions) error {
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

	records, err := lc.load(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", lc.use, err)
	}

	view, err := buildView(lc.definition(time.Now), records, opts)
	if err != nil {
		return err
	}
	result := view.Result()

	out := cmd.OutOrStdout()
	def := view.Definition()
	if err := writeResult(out, def.Title, result.Table, result.Message); err != nil {
		return err
	}
	if lc.footer != nil {
		if err := lc.footer(out, view.Records()); err != nil {
			return err
		}
	}

	if !opts.Export {
		return nil
	}

	progress, finish := progressReporter("Gerando " + lc.kind.Title() + "...")
	svc, err := newConsoleActions(ctx, cfg, progress)
	if err != nil {
		return err
	}

	res, err := svc.ExportReport(ctx, lc.kind, listview.Render(result.Records, def.Columns))
	finish()
	if err != nil {
		return err
	}

	slog.Debug("export finished", "id", res.ID, "rows", res.Rows)
	_, err = fmt.Fprintln(out, cli.SubtleStyle.Render("Arquivo: ")+res.Location)
	return err
}

// buildView applies the command line filters. Filter values are matched
// case-insensitively against the declared options.
func buildView[T listview.Record](def listview.Definition[T], records []T, opts listOptions) (listview.View[T], error) {
	view := listview.NewView(def, records)

	if opts.Search != "" {
		if !def.Searchable {
			return view, fmt.Errorf("a lista %q não tem busca por texto", def.Title)
		}
		view.SetQuery(opts.Search)
	}

	filters := []struct {
		value string
		dim   listview.Dimension
		flag  string
	}{
		{value: opts.Status, dim: listview.DimensionStatus, flag: "--status"},
		{value: opts.Type, dim: listview.DimensionType, flag: "--type"},
		{value: opts.Period, dim: listview.DimensionPeriod, flag: "--period"},
	}

	for _, f := range filters {
		if f.value == "" {
			continue
		}
		spec, ok := def.Dimension(f.dim)
		if !ok {
			return view, fmt.Errorf("a lista %q não aceita %s", def.Title, f.flag)
		}
		option, ok := matchOption(spec.Options, f.value)
		if !ok {
			return view, fmt.Errorf("valor inválido para %s: %q (opções: %s)",
				f.flag, f.value, strings.Join(spec.Options, ", "))
		}
		view.Select(f.dim, option)
	}

	return view, nil
}

func matchOption(options []string, value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, o := range options {
		if strings.EqualFold(o, value) {
			return o, true
		}
	}
	return "", false
}

// writeResult prints a rendered table, or the empty-state copy.
func writeResult(w io.Writer, title string, t listview.Table, empty string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", cli.TitleStyle.Render(title)); err != nil {
		return err
	}

	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(w, cli.SubtleStyle.Render(empty))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, len(t.Headers))
	rules := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = cli.HeaderStyle.Render(h)
		rules[i] = strings.Repeat("─", lipgloss.Width(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rules, "\t")); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = c.Text
			if c.Badge {
				cells[i] = components.BadgeGlyph(c.Category) + " " + c.Text
			}
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table writer: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s\n", cli.SubtleStyle.Render(fmt.Sprintf("%d registro(s)", len(t.Rows))))
	return err
}

// writeCommissionTotals prints the summary cards of the ledger, computed
// over every entry.
func writeCommissionTotals(w io.Writer, entries []model.CommissionEntry) error {
	totals := views.TotalCommissions(entries)
	_, err := fmt.Fprintf(w, "%s %s   %s %s\n",
		cli.SubtleStyle.Render("Comissão a Receber:"), cli.HeaderStyle.Render(format.Currency(totals.Receivable)),
		cli.SubtleStyle.Render("Total Recebido:"), cli.HeaderStyle.Render(format.Currency(totals.Received)),
	)
	return err
}
