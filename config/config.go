package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mmonclus-coder/quote-web/driver"
	"github.com/mmonclus-coder/quote-web/pdf"
)

const ServerStartPort = ":8080"

type Config struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Quote    QuoteConfig    `mapstructure:"quote"`
}

type PostgresConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

// QuoteConfig carries the pricing and page furniture. The unit price is
// explicit configuration threaded into every submission, so historical
// quotes keep the rate that was in effect when they were saved.
type QuoteConfig struct {
	UnitPrice      float64  `mapstructure:"unit_price"`
	CompanyLines   []string `mapstructure:"company_lines"`
	RecipientLines []string `mapstructure:"recipient_lines"`
	PayableTo      string   `mapstructure:"payable_to"`
	LogoPath       string   `mapstructure:"logo_path"`
	FontDir        string   `mapstructure:"font_dir"`
}

func ProvideApplicationConfig() (*Config, error) {

	viper.SetConfigFile("./config.yaml")
	viper.SetConfigType("yaml")

	viper.SetDefault("postgres.url", "")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("quote.unit_price", 120.00)
	viper.SetDefault("quote.payable_to", "Monclus Vending Services LLC")
	viper.SetDefault("quote.company_lines", []string{
		"Monclus Vending Services",
		"184-10 Jamaica Ave.",
		"Hollis, NY 11423",
		"(347) 757-7939",
	})
	viper.SetDefault("quote.recipient_lines", []string{
		"Newco Services",
		"Dispatch@newcoservices.com",
		"1200 S. Federal Hwy, Suite 304",
		"Boynton Beach, FL 33435",
		"(866) 549-6146",
	})
	viper.SetDefault("quote.logo_path", "static/logo.png")
	viper.SetDefault("quote.font_dir", "")

	// Nested keys map to underscored env vars, e.g. POSTGRES_URL.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat("./config.yaml"); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func ProvidePostgresConn(appConfig *Config) (driver.PostgresPool, error) {

	conn, err := driver.ConnectSQL(appConfig.Postgres.URL)
	if err != nil {
		return nil, err
	}

	if err = driver.Migrate(context.Background(), conn.Pool); err != nil {
		conn.Pool.Close()
		return nil, err
	}

	return conn.Pool, nil
}

// ProvideRedis returns nil when no cache address is configured; the quote
// repository degrades to database-only reads.
func ProvideRedis(appConfig *Config) (*redis.Client, error) {

	if appConfig.Redis.Addr == "" {
		return nil, nil
	}
	return driver.ConnectRedis(appConfig.Redis.Addr, appConfig.Redis.Password, 0)
}

func ProvideRendererConfig(appConfig *Config) pdf.Config {
	return pdf.Config{
		CompanyLines:   appConfig.Quote.CompanyLines,
		RecipientLines: appConfig.Quote.RecipientLines,
		PayableTo:      appConfig.Quote.PayableTo,
		LogoPath:       appConfig.Quote.LogoPath,
		FontDir:        appConfig.Quote.FontDir,
	}
}

func NewLogger() *zap.Logger {

	logger, _ := zap.NewProduction()
	return logger
}
