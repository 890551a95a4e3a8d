package dataset

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Headers: []string{"Country", "GDP_Growth", "Note"},
		Rows: [][]string{
			{"Turkey", "4.5", "emerging, large"},
			{"Japan", "1.1", ""},
		},
	}
}

func TestWriteCSV_QuotesCells(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))
	assert.Equal(t, "Country,GDP_Growth,Note\nTurkey,4.5,\"emerging, large\"\nJapan,1.1,\n", buf.String())
}

func TestSave_ReadsBack(t *testing.T) {
	for _, name := range []string{"economy.csv", "economy.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, sampleTable()))

			table, err := Load(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, sampleTable().Headers, table.Headers)
			require.Equal(t, 2, table.Len())
			assert.Equal(t, "emerging, large", table.Record(0)["Note"])
			assert.Equal(t, []float64{4.5, 1.1}, table.NumericColumn("GDP_Growth"))
		})
	}
}
