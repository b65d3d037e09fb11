package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/domain/pricing"

	"gopkg.in/yaml.v3"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config is the process configuration, read from the environment (.env is autoloaded
// by cmd/api) plus an optional YAML catalog file.
type Config struct {
	Stage    string
	Port     int
	LogLevel string

	Storage       string
	QuotesTable   string
	PaymentsTable string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string

	CatalogFile string
	Catalog     entities.Catalog
}

// Load reads the configuration and validates the catalog. A malformed catalog is fatal.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := Config{
		Stage:                  getenvDefault("STAGE", "dev"),
		Port:                   port,
		LogLevel:               getenvDefault("LOG_LEVEL", "info"),
		Storage:                strings.ToLower(getenvDefault("STORAGE", StorageDynamoDB)),
		QuotesTable:            getenvDefault("QUOTES_TABLE", "quotes"),
		PaymentsTable:          getenvDefault("PAYMENTS_TABLE", "quote_payments"),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     envBool("PAYMENT_GATEWAY_MOCK") || envBool("MERCADOPAGO_MOCK"),
		TestPayerEmail:         strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		CatalogFile:            strings.TrimSpace(os.Getenv("CATALOG_FILE")),
	}
	if cfg.Storage != StorageDynamoDB && cfg.Storage != StorageMemory {
		return Config{}, fmt.Errorf("invalid STORAGE %q: want %s or %s", cfg.Storage, StorageDynamoDB, StorageMemory)
	}

	if cfg.CatalogFile == "" {
		cfg.Catalog = DefaultCatalog()
	} else {
		cfg.Catalog, err = LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return Config{}, err
		}
	}
	if err := pricing.ValidateCatalog(cfg.Catalog); err != nil {
		return Config{}, fmt.Errorf("catalog: %w", err)
	}
	return cfg, nil
}

// DefaultCatalog is the rate card used when CATALOG_FILE is not set.
func DefaultCatalog() entities.Catalog {
	return entities.Catalog{
		VideoRates: entities.VideoRates{Base: 500, Additional: 300, PerMinute: 200},
		AddOns: []entities.AddOn{
			entities.NewFlatAddOn("drone", "Drone footage", 350, true),
			entities.NewFlatAddOn("second_angle", "Second camera angle", 250, true),
			entities.NewFlatAddOn("photography", "Stills photography", 400, false),
			entities.NewFlatAddOn("color_grade", "Colour grade", 300, false),
			entities.NewFlatAddOn("subtitles", "Burned-in subtitles", 120, false),
			entities.NewFlatAddOn("raw_footage", "Raw footage handover", 0, false),
			entities.NewRushAddOn("rush", "Rush turnaround", 1.5),
		},
	}
}

type catalogFile struct {
	VideoRates entities.VideoRates `yaml:"video_rates"`
	AddOns     []addOnEntry        `yaml:"addons"`
}

type addOnEntry struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Price      *float64 `yaml:"price"`
	PerDay     bool     `yaml:"per_day"`
	Multiplier *float64 `yaml:"multiplier"`
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog. An entry with a multiplier is the rush modifier;
// every other entry is a flat charge. An entry carrying both is rejected.
func ParseCatalog(data []byte) (entities.Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return entities.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	out := entities.Catalog{VideoRates: f.VideoRates, AddOns: make([]entities.AddOn, 0, len(f.AddOns))}
	for i, e := range f.AddOns {
		switch {
		case e.Multiplier != nil && e.Price != nil:
			return entities.Catalog{}, &pricing.ConfigurationError{
				Field:   fmt.Sprintf("addons[%d]", i),
				Message: "an add-on has either a price or a multiplier, not both",
			}
		case e.Multiplier != nil:
			out.AddOns = append(out.AddOns, entities.NewRushAddOn(e.ID, e.Name, *e.Multiplier))
		default:
			price := 0.0
			if e.Price != nil {
				price = *e.Price
			}
			out.AddOns = append(out.AddOns, entities.NewFlatAddOn(e.ID, e.Name, price, e.PerDay))
		}
	}
	return out, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
