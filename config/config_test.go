package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The config package runs from its own directory here, so no config.yaml
// is present and every value comes from defaults or the environment.
func TestProvideApplicationConfigDefaults(t *testing.T) {
	config, err := ProvideApplicationConfig()
	if err != nil {
		t.Fatalf("ProvideApplicationConfig: %v", err)
	}

	if config.Quote.UnitPrice != 120.00 {
		t.Errorf("UnitPrice = %v, want 120", config.Quote.UnitPrice)
	}
	if config.Quote.PayableTo != "Monclus Vending Services LLC" {
		t.Errorf("PayableTo = %q", config.Quote.PayableTo)
	}
	wantCompany := []string{
		"Monclus Vending Services",
		"184-10 Jamaica Ave.",
		"Hollis, NY 11423",
		"(347) 757-7939",
	}
	if diff := cmp.Diff(wantCompany, config.Quote.CompanyLines); diff != "" {
		t.Errorf("CompanyLines (-want +got):\n%s", diff)
	}
	if config.Quote.LogoPath != "static/logo.png" {
		t.Errorf("LogoPath = %q", config.Quote.LogoPath)
	}
	if config.Redis.Addr != "" {
		t.Errorf("Redis.Addr = %q, want empty", config.Redis.Addr)
	}
}

func TestProvideApplicationConfigEnvOverrides(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://override:5432/quotes")
	t.Setenv("QUOTE_PAYABLE_TO", "Another Payee LLC")

	config, err := ProvideApplicationConfig()
	if err != nil {
		t.Fatalf("ProvideApplicationConfig: %v", err)
	}

	if config.Postgres.URL != "postgres://override:5432/quotes" {
		t.Errorf("Postgres.URL = %q, env override was ignored", config.Postgres.URL)
	}
	if config.Quote.PayableTo != "Another Payee LLC" {
		t.Errorf("Quote.PayableTo = %q, env override was ignored", config.Quote.PayableTo)
	}
}
