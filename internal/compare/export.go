package compare

import (
	"io"

	"econdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Comparison"

// WriteWorkbook exports the comparison table and summary as an XLSX workbook
func WriteWorkbook(w io.Writer, result *Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return errors.Wrap(err, "failed to name sheet")
	}

	header := []interface{}{"Metric", result.Country1, result.Country2, "Difference"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	line := 2
	for _, row := range result.Rows {
		cells := []interface{}{row.Metric, row.Format(row.Value1), row.Format(row.Value2), row.DifferenceText()}
		if err := writeRow(f, line, cells); err != nil {
			return err
		}
		line++
	}

	line++
	if err := writeRow(f, line, []interface{}{"Comparison Summary"}); err != nil {
		return err
	}
	for _, point := range append(append([]string{}, result.Summary...), result.Verdict) {
		line++
		if err := writeRow(f, line, []interface{}{point}); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

func writeRow(f *excelize.File, line int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return errors.Wrap(err, "invalid cell")
	}
	if err := f.SetSheetRow(exportSheet, cell, &cells); err != nil {
		return errors.Wrapf(err, "failed to write row %d", line)
	}
	return nil
}
