package config

import (
	"testing"

	"econdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "ECONOMY_DATA_FILE", "MODEL_FILE", "IMAGES_DIR", "DATABASE_URL", "DB_DRIVER", "COMPARE_SEED"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ECONOMY_DATA_FILE", "data/eco.xlsx")
	t.Setenv("DATABASE_URL", "postgres://user@localhost/econ")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("COMPARE_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "data/eco.xlsx", cfg.Data.CSVFile)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, int64(7), cfg.Compare.Seed)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestInferDriver(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"", DriverSQLite},
		{"file:views.db", DriverSQLite},
		{"postgresql://localhost/db", DriverPostgres},
		{"postgres://localhost/db", DriverPostgres},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferDriver(tt.url), tt.url)
	}
}
