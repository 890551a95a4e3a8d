package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"econdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Reader handles reading CSV and Excel files into a Table
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader, choosing the format from the file extension
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read reads the whole file. A file with only a header row yields a table with zero rows.
func (r *Reader) Read(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, fmt.Errorf("%s file not found: %w", strings.ToUpper(r.fileType), err)
	}

	var (
		rows [][]string
		err  error
	)
	start := time.Now()
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s file has no header row", strings.ToUpper(r.fileType))
	}

	table := buildTable(r.filePath, rows)
	log.Printf("[DataReader] %s file read in %.2fms (%d columns, %d rows)",
		strings.ToUpper(r.fileType), float64(time.Since(start).Nanoseconds())/1e6, len(table.Headers), len(table.Rows))
	return table, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// readExcelRows reads the first sheet of the workbook
func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func buildTable(source string, rows [][]string) *Table {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		cells := make([]string, len(headers))
		for j := 0; j < len(headers) && j < len(row); j++ {
			cells[j] = strings.TrimSpace(row[j])
		}
		data = append(data, cells)
	}

	return &Table{Source: source, Headers: headers, Rows: data}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Load reads a dataset file, returning a DATA_LOAD_ERROR on any failure
func Load(ctx context.Context, path string) (*Table, error) {
	table, err := NewReader(path).Read(ctx)
	if err != nil {
		return nil, errors.DataLoad(path, err)
	}
	return table, nil
}

// LoadOrEmpty never fails the caller: on error it returns an empty table
// together with the error so the page can surface it and keep rendering.
func LoadOrEmpty(ctx context.Context, path string) (*Table, error) {
	table, err := Load(ctx, path)
	if err != nil {
		log.Printf("[DataLoader] Error loading data: %v", err)
		return Empty(), err
	}
	return table, nil
}
