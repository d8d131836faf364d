package importer

import (
	"path/filepath"
	"strings"

	"inventario/internal/domain/inventory"
)

// BrandAdapter читает файл ручного пересчета одной марки
type BrandAdapter struct {
	brand  inventory.Origin
	fields []FieldAliases
}

// NewBrandAdapter создает адаптер; nil fields означает таблицу алиасов по умолчанию
func NewBrandAdapter(brand inventory.Origin, fields []FieldAliases) *BrandAdapter {
	if fields == nil {
		fields = DefaultBrandFields()
	}
	return &BrandAdapter{brand: brand, fields: fields}
}

// Origin возвращает марку адаптера
func (a *BrandAdapter) Origin() inventory.Origin {
	return a.brand
}

// Read читает файл марки
func (a *BrandAdapter) Read(path string) (*AdapterResult, error) {
	table, headerIdx, err := loadTable(path, a.fields)
	if err != nil {
		return nil, err
	}

	refIdx := table.Index(FieldReference)
	descIdx := table.Index(FieldDescription)
	qtyIdx := table.Index(FieldQuantity)
	locIdx := table.Index(FieldLocation) // -1, если колонки нет

	result := &AdapterResult{
		File:      filepath.Base(path),
		Origin:    a.brand,
		HeaderRow: headerIdx + 1,
		Rows:      make(inventory.Table, 0, len(table.Rows)),
	}

	for _, row := range table.Rows {
		if isEmptyRow(row) {
			result.Dropped++
			continue
		}

		qty, ok := ParseQuantity(Cell(row, qtyIdx))
		if !ok {
			result.Malformed++
		}

		result.Rows = append(result.Rows, inventory.Row{
			Reference:   strings.TrimSpace(Cell(row, refIdx)),
			Description: strings.TrimSpace(Cell(row, descIdx)),
			Quantity:    qty,
			Origin:      a.brand,
			Location:    strings.TrimSpace(Cell(row, locIdx)),
		})
	}

	return result, nil
}
