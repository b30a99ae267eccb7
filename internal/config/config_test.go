package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "100", cfg.Pricing.FreeShippingThreshold.String())
	assert.Equal(t, "9.99", cfg.Pricing.FlatShippingFee.String())
	assert.Equal(t, "0.08", cfg.Pricing.TaxRate.String())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UsesRedis())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "REDIS")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("CART_TTL", "2h")
	t.Setenv("TAX_RATE", "0.0875")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.Equal(t, 2*time.Hour, cfg.Storage.CartTTL)
	assert.Equal(t, "0.0875", cfg.Pricing.TaxRate.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := Load()
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestValidateRejectsShortSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "short")

	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

func TestValidateRejectsNegativePricing(t *testing.T) {
	t.Setenv("FLAT_SHIPPING_FEE", "-1")

	_, err := Load()
	assert.ErrorContains(t, err, "pricing")
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable",
	}}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.GetDatabaseDSN())
}
