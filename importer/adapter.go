package importer

import (
	"path/filepath"

	"inventario/internal/domain/inventory"
)

// headerSampleRows сколько строк показывать, если заголовок не найден
const headerSampleRows = 5

// Adapter читает один файл-источник и возвращает канонические строки
type Adapter interface {
	Read(path string) (*AdapterResult, error)
	Origin() inventory.Origin
}

// AdapterResult результат чтения одного источника
type AdapterResult struct {
	File      string
	Origin    inventory.Origin
	HeaderRow int // номер строки заголовков, с 1
	Rows      inventory.Table
	Dropped   int // полностью пустые строки
	Malformed int // нечисловые количества, замененные нулем
}

// loadTable находит строку заголовков, сопоставляет колонки и проверяет обязательные поля
func loadTable(path string, fields []FieldAliases) (*Table, int, error) {
	sheet, err := ReadSheet(path)
	if err != nil {
		return nil, HeaderNotFound, err
	}

	headerIdx := FindHeaderRow(sheet.Rows, RequiredAliasSets(fields))
	if headerIdx == HeaderNotFound {
		return nil, HeaderNotFound, &inventory.HeaderNotFoundError{
			File:   filepath.Base(path),
			Fields: RequiredFieldNames(fields),
			Sample: SampleRows(sheet.Rows, headerSampleRows),
		}
	}

	table := HeaderedTable(sheet.Rows, headerIdx)
	table.Columns = MapColumns(table.Columns, fields)

	for _, field := range fields {
		if field.Required && !table.Has(field.Field) {
			return nil, headerIdx, &inventory.MissingColumnError{
				File:      filepath.Base(path),
				Column:    field.Field,
				Available: table.Columns,
			}
		}
	}

	return table, headerIdx, nil
}
