package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"inventario/internal/domain/inventory"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Sheet сырые строки первого листа файла
type Sheet struct {
	Path string
	Name string
	Rows [][]string
}

// ReadSheet читает первый лист Excel-файла или CSV-выгрузку
func ReadSheet(path string) (*Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVSheet(path)
	default:
		return readExcelSheet(path)
	}
}

func readExcelSheet(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	// Получаем имя первого листа
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in %s", filepath.Base(path))
	}

	// Сырые значения: количество не должно зависеть от числового формата ячейки
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from %s: %w", filepath.Base(path), err)
	}

	return &Sheet{Path: path, Name: sheetName, Rows: rows}, nil
}

func readCSVSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", filepath.Base(path), err)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	// Выгрузки из Excel под Windows приходят в cp1252
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file %s: %w", filepath.Base(path), err)
	}

	return &Sheet{Path: path, Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), Rows: rows}, nil
}

// detectDelimiter выбирает разделитель с наиболее стабильным числом колонок
func detectDelimiter(data []byte) rune {
	best, bestScore := ',', 0
	for _, delim := range []rune{',', ';', '\t'} {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}

		widths := make(map[int]int)
		maxCols := 0
		for _, record := range records {
			widths[len(record)]++
			if len(record) > maxCols {
				maxCols = len(record)
			}
		}
		if maxCols < 2 {
			continue
		}

		score := widths[maxCols]*10 + maxCols
		if score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

// Table лист, перечитанный с найденной строкой заголовков
type Table struct {
	Columns []string
	Rows    [][]string
}

// HeaderedTable использует строку headerIdx как заголовок, строки ниже как данные
func HeaderedTable(rows [][]string, headerIdx int) *Table {
	if headerIdx < 0 || headerIdx >= len(rows) {
		return &Table{}
	}

	columns := make([]string, len(rows[headerIdx]))
	copy(columns, rows[headerIdx])

	return &Table{
		Columns: columns,
		Rows:    rows[headerIdx+1:],
	}
}

// Index возвращает индекс колонки; при дублях побеждает последняя
func (t *Table) Index(name string) int {
	idx := -1
	for i, col := range t.Columns {
		if col == name {
			idx = i
		}
	}
	return idx
}

// Has сообщает, что колонка присутствует
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Cell возвращает значение ячейки или пустую строку за пределами строки
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// isEmptyRow проверяет, что все ячейки строки пустые
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if !inventory.IsBlank(cell) {
			return false
		}
	}
	return true
}
