package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Imaagus/cabin-booking-backend/internal/cabin"
	"github.com/Imaagus/cabin-booking-backend/internal/config"
)

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/cabins")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.False(t, cfg.IsProduction)
	require.Equal(t, cabin.DefaultNames, cfg.CabinNames)
}

func TestLoadCabinNames(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/cabins")
	t.Setenv("CABIN_NAMES", "Capri 1, Capri 2 ,")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"Capri 1", "Capri 2"}, cfg.CabinNames)
}

func TestLoadProduction(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/cabins")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://cabins.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction)
	require.Equal(t, "https://cabins.example.com", cfg.ProdOrigins)
}
