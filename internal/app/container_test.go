package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/app"
	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Storage:   config.StorageConfig{Driver: config.StorageMemory},
		Inventory: config.InventoryConfig{ReportLocale: "es", RecentActivityLimit: 5},
	}
}

func TestNew_SembradoYReportes(t *testing.T) {
	c, err := app.New(context.Background(), memoryConfig(), logger.Nop(), true)
	require.NoError(t, err)
	defer c.Close()

	summary := c.DashboardUC.GetSummary()
	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, 3, summary.TotalLocations)
	assert.Equal(t, int64(75), summary.TotalStock)

	pdf, contentType, err := c.ReportUC.Export(context.Background(), analytics.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")

	xml, _, err := c.ReportUC.Export(context.Background(), analytics.FormatXML)
	require.NoError(t, err)
	assert.Contains(t, string(xml), "Laptop Computer")
}

func TestNew_ReferenciasEstrictasDesdeConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.Inventory.StrictReferences = true
	c, err := app.New(context.Background(), cfg, logger.Nop(), false)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.RegisterMovement.RegisterMovement(context.Background(), inventory.MovementInput{ProductID: "X", ToLocation: "Y", Qty: 1})
	assert.Error(t, err)
	assert.Empty(t, c.Store.Snapshot().Movements)
}
