package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/app"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// globalOptions flags compartidos por todos los subcomandos.
type globalOptions struct {
	seed    bool
	verbose bool
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "inventoryctl",
		Short:         "Operaciones de inventario por línea de comandos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `inventoryctl usa la misma configuración que la API (variables de entorno o .env):
STORAGE_DRIVER, REDIS_ADDR, DATABASE_URL, REPORT_LOCALE, etc.`,
	}
	root.PersistentFlags().BoolVar(&opts.seed, "seed", false, "Sembrar datos de ejemplo en colecciones vacías antes de ejecutar")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Logs de depuración en stderr")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Tiempo máximo de la operación")

	root.AddCommand(
		newSeedCmd(opts),
		newDashboardCmd(opts),
		newActivityCmd(opts),
		newReportCmd(opts),
		newMoveCmd(opts),
		newTokenCmd(),
	)
	return root
}

// withContainer carga configuración y almacenamiento, ejecuta fn y cierra las conexiones.
func withContainer(cmd *cobra.Command, opts *globalOptions, seed bool, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	c, err := app.New(ctx, cfg, log, seed || opts.seed)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(ctx, c)
}

func newLogger(w io.Writer, verbose bool) *logger.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Env: "development", Level: level, Output: w})
}
