package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/app"
	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	domaininv "github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Siembra los datos de ejemplo en las colecciones vacías",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, true, func(_ context.Context, c *app.Container) error {
				snap := c.Store.Snapshot()
				fmt.Fprintf(cmd.OutOrStdout(), "productos: %d, ubicaciones: %d, movimientos: %d\n",
					len(snap.Products), len(snap.Locations), len(snap.Movements))
				return nil
			})
		},
	}
}

func newDashboardCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Muestra los contadores del inventario y el stock total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, false, func(_ context.Context, c *app.Container) error {
				summary := c.DashboardUC.GetSummary()
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), summary)
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "Productos\t%d\n", summary.TotalProducts)
				fmt.Fprintf(w, "Ubicaciones\t%d\n", summary.TotalLocations)
				fmt.Fprintf(w, "Movimientos\t%d\n", summary.TotalMovements)
				fmt.Fprintf(w, "Stock total\t%d\n", summary.TotalStock)
				return w.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Salida en JSON")
	return cmd
}

func newActivityCmd(opts *globalOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Lista los movimientos más recientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, false, func(_ context.Context, c *app.Container) error {
				snap := c.Store.Snapshot()
				catalog := domaininv.NewCatalog(snap.Products, snap.Locations)
				rows := domaininv.RecentActivity(snap.Movements, catalog, limit)
				if len(rows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "sin movimientos")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, r := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.Timestamp.Format("2006-01-02 15:04"), r.Kind, r.Description)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", domaininv.DefaultRecentActivityLimit, "Cantidad de movimientos")
	return cmd
}

func newReportCmd(opts *globalOptions) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Exporta el reporte de stock por ubicación (json, pdf o xml)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			return withContainer(cmd, opts, false, func(ctx context.Context, c *app.Container) error {
				var out []byte
				if format == analytics.FormatJSON {
					raw, err := json.MarshalIndent(c.ReportUC.StockReport(), "", "  ")
					if err != nil {
						return err
					}
					out = append(raw, '\n')
				} else {
					raw, _, err := c.ReportUC.Export(ctx, format)
					if err != nil {
						return err
					}
					out = raw
				}
				if output == "" || output == "-" {
					_, err := cmd.OutOrStdout().Write(out)
					return err
				}
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("escribir %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "reporte %s escrito en %s (%d bytes)\n", format, output, len(out))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", analytics.FormatJSON, "Formato: json, pdf o xml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Archivo de salida (por defecto stdout)")
	return cmd
}

func newMoveCmd(opts *globalOptions) *cobra.Command {
	var in inventory.MovementInput
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Registra un movimiento (entrada, salida o traslado)",
		Example: `  inventoryctl move --product PROD001 --to LOC001 --qty 20
  inventoryctl move --product PROD001 --from LOC001 --to LOC002 --qty 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, false, func(ctx context.Context, c *app.Container) error {
				m, err := c.RegisterMovement.RegisterMovement(ctx, in)
				if err != nil {
					if code := domaininv.RejectionCode(err); code != "" {
						return fmt.Errorf("%s: %w", code, err)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "movimiento %d registrado (%s)\n", m.MovementID, m.Kind())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.ProductID, "product", "", "Producto")
	cmd.Flags().StringVar(&in.FromLocation, "from", "", "Ubicación de origen")
	cmd.Flags().StringVar(&in.ToLocation, "to", "", "Ubicación de destino")
	cmd.Flags().Int64Var(&in.Qty, "qty", 0, "Cantidad")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
