package workbook

import (
	"fmt"

	"inventario/internal/domain/inventory"

	"github.com/xuri/excelize/v2"
)

const (
	defaultColWidth = 15
	surplusColor    = "#C6EFCE"
	deficitColor    = "#FFC7CE"
	headerColor     = "#4472C4"
)

// sheetWriter пишет один файл: заголовки, строки и оформление
type sheetWriter struct {
	f    *excelize.File
	path string
}

func newSheetWriter(path, firstSheet string) (*sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), firstSheet); err != nil {
		f.Close()
		return nil, writeError(path, fmt.Errorf("failed to create sheet: %w", err))
	}
	return &sheetWriter{f: f, path: path}, nil
}

func (w *sheetWriter) Close() error {
	return w.f.Close()
}

// addSheet добавляет лист после первого
func (w *sheetWriter) addSheet(name string) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return writeError(w.path, fmt.Errorf("failed to create sheet: %w", err))
	}
	return nil
}

// writeHeader пишет строку заголовков с заливкой
func (w *sheetWriter) writeHeader(sheet string, headers []string) error {
	style, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return writeError(w.path, fmt.Errorf("failed to create header style: %w", err))
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := w.f.SetCellValue(sheet, cell, header); err != nil {
			return writeError(w.path, err)
		}
		if err := w.f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return writeError(w.path, err)
		}
	}

	// Ширина колонок
	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := w.f.SetColWidth(sheet, col, col, defaultColWidth); err != nil {
			return writeError(w.path, err)
		}
	}
	return nil
}

// writeRow пишет строку данных; rowIdx считается с 0 после заголовка
func (w *sheetWriter) writeRow(sheet string, rowIdx int, values []interface{}) error {
	cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		return writeError(w.path, err)
	}
	return nil
}

// fillStyles стили заливки строк по тегу расхождения
func (w *sheetWriter) fillStyles() (map[inventory.DifferenceTag]int, error) {
	styles := make(map[inventory.DifferenceTag]int, 2)
	for tag, color := range map[inventory.DifferenceTag]string{
		inventory.TagSurplus: surplusColor,
		inventory.TagDeficit: deficitColor,
	} {
		id, err := w.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, writeError(w.path, fmt.Errorf("failed to create fill style: %w", err))
		}
		styles[tag] = id
	}
	return styles, nil
}

// styleRow заливает строку данных целиком
func (w *sheetWriter) styleRow(sheet string, rowIdx, cols, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
	last, _ := excelize.CoordinatesToCellName(cols, rowIdx+2)
	if err := w.f.SetCellStyle(sheet, first, last, style); err != nil {
		return writeError(w.path, err)
	}
	return nil
}

func (w *sheetWriter) save() error {
	w.f.SetActiveSheet(0)
	if err := w.f.SaveAs(w.path); err != nil {
		return writeError(w.path, fmt.Errorf("failed to save Excel file: %w", err))
	}
	return nil
}

func writeError(path string, err error) error {
	return &inventory.OutputWriteError{Path: path, Err: err}
}
