package config

import (
	"os"
	"path/filepath"
	"testing"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
video_rates:
  base: 650
  additional: 350
  per_minute: 150
addons:
  - id: drone
    name: Drone footage
    price: 300
    per_day: true
  - id: music
    name: Client music
  - id: rush
    name: Rush
    multiplier: 1.25
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, entities.VideoRates{Base: 650, Additional: 350, PerMinute: 150}, c.VideoRates)
	require.Len(t, c.AddOns, 3)
	assert.Equal(t, entities.NewFlatAddOn("drone", "Drone footage", 300, true), c.AddOns[0])
	assert.Equal(t, entities.NewFlatAddOn("music", "Client music", 0, false), c.AddOns[1])
	assert.Equal(t, entities.NewRushAddOn("rush", "Rush", 1.25), c.AddOns[2])
	assert.NoError(t, pricing.ValidateCatalog(c))
}

func TestParseCatalog_PriceAndMultiplier(t *testing.T) {
	_, err := ParseCatalog([]byte("addons:\n  - id: x\n    price: 10\n    multiplier: 2\n"))
	assert.ErrorIs(t, err, pricing.ErrConfiguration)
}

func TestParseCatalog_BadYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("addons: ["))
	assert.Error(t, err)
}

func TestDefaultCatalogIsValid(t *testing.T) {
	assert.NoError(t, pricing.ValidateCatalog(DefaultCatalog()))
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STORAGE", "")
		t.Setenv("CATALOG_FILE", "")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, StorageDynamoDB, cfg.Storage)
		assert.Equal(t, "quotes", cfg.QuotesTable)
		assert.False(t, cfg.PaymentGatewayMock)
		assert.Equal(t, DefaultCatalog(), cfg.Catalog)
	})

	t.Run("catalog file with two rush entries fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		body := "addons:\n  - id: a\n    multiplier: 1.5\n  - id: b\n    multiplier: 2\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		t.Setenv("CATALOG_FILE", path)
		t.Setenv("STORAGE", "memory")

		_, err := Load()
		assert.ErrorIs(t, err, pricing.ErrConfiguration)
	})

	t.Run("invalid storage", func(t *testing.T) {
		t.Setenv("CATALOG_FILE", "")
		t.Setenv("STORAGE", "postgres")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("mock flag", func(t *testing.T) {
		t.Setenv("CATALOG_FILE", "")
		t.Setenv("STORAGE", "memory")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.PaymentGatewayMock)
		assert.Equal(t, StorageMemory, cfg.Storage)
	})
}
