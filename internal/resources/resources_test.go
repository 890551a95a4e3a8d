package resources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"econdash/internal/config"
	"econdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BothAvailable(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "economy.csv")
	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(csvPath, []byte("Country,GDP\nTurkey,720\n"), 0o644))
	require.NoError(t, os.WriteFile(modelPath, []byte(`{"model": {"type": "linear_regression", "coefficients": {"GDP_Growth": 1}}, "features": ["GDP_Growth"]}`), 0o644))

	res, err := Load(context.Background(), config.DataConfig{CSVFile: csvPath, ModelFile: modelPath})
	require.NoError(t, err)

	assert.NoError(t, res.DataErr)
	assert.NoError(t, res.ModelErr)
	assert.Equal(t, 1, res.Data.Len())
	assert.True(t, res.ModelLoaded())
	assert.False(t, res.LoadedAt.IsZero())
}

func TestLoad_FallbacksOnFailure(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(`["not", "a", "mapping"]`), 0o644))

	res, err := Load(context.Background(), config.DataConfig{
		CSVFile:   filepath.Join(dir, "missing.csv"),
		ModelFile: modelPath,
	})
	require.NoError(t, err, "load failures are reported, not returned")

	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(res.DataErr))
	assert.True(t, res.Data.IsEmpty())
	assert.Equal(t, errors.CodeModelShape, errors.GetCode(res.ModelErr))
	assert.Nil(t, res.Model)
	assert.False(t, res.ModelLoaded())
}

func TestLoad_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, config.Default().Data)
	assert.ErrorIs(t, err, context.Canceled)
}
