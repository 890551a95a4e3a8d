package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"econdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Country,Year,GDP,Exports
Turkey,2020,720.1,"169,500"
Germany,2020,3890.6,1380.0

Japan,2020,5040.1,
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_WellFormedCSV(t *testing.T) {
	path := writeFile(t, "economy.csv", sampleCSV)

	table, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Country", "Year", "GDP", "Exports"}, table.Headers)
	assert.Equal(t, 3, table.Len(), "blank lines are skipped")
	assert.False(t, table.IsEmpty())
	assert.Equal(t, []string{"Turkey", "Germany", "Japan"}, table.Column("Country"))
	assert.Equal(t, []float64{169500, 1380}, table.NumericColumn("Exports"))
	assert.Equal(t, "Germany", table.Record(1)["Country"])
}

func TestLoadOrEmpty_MissingFile(t *testing.T) {
	table, err := LoadOrEmpty(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))

	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(err))
	require.NotNil(t, table)
	assert.True(t, table.IsEmpty())
	assert.Empty(t, table.Headers)
}

func TestLoadOrEmpty_MalformedCSV(t *testing.T) {
	path := writeFile(t, "broken.csv", "a,b\n\"unterminated,1\n")

	table, err := LoadOrEmpty(context.Background(), path)
	require.Error(t, err)
	assert.True(t, table.IsEmpty())
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "Country,GDP\n")

	table, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"Country", "GDP"}, table.Headers)
}

func TestLoad_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "economy.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Country", "GDP"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"France", 2630.3}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []float64{2630.3}, table.NumericColumn("GDP"))
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, writeFile(t, "economy.csv", sampleCSV))
	assert.ErrorIs(t, err, context.Canceled)
}
