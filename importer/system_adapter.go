package importer

import (
	"path/filepath"
	"regexp"
	"strings"

	"inventario/internal/domain/inventory"
)

// trailingLocation скобки в конце наименования содержат склад
var trailingLocation = regexp.MustCompile(`\(([^()]*)\)$`)

// SystemAdapter читает выгрузку оценки запасов учетной системы
type SystemAdapter struct {
	origin inventory.Origin
	fields []FieldAliases
}

// NewSystemAdapter создает адаптер; nil fields означает таблицу алиасов по умолчанию
func NewSystemAdapter(origin inventory.Origin, fields []FieldAliases) *SystemAdapter {
	if origin == "" {
		origin = inventory.SystemOrigin
	}
	if fields == nil {
		fields = DefaultSystemFields()
	}
	return &SystemAdapter{origin: origin, fields: fields}
}

// Origin возвращает тег учетной системы
func (a *SystemAdapter) Origin() inventory.Origin {
	return a.origin
}

// Read читает выгрузку
func (a *SystemAdapter) Read(path string) (*AdapterResult, error) {
	table, headerIdx, err := loadTable(path, a.fields)
	if err != nil {
		return nil, err
	}

	codeIdx := table.Index(FieldProductCode)
	nameIdx := table.Index(FieldProductName)
	refIdx := table.Index(FieldFactoryReference)
	balanceIdx := table.Index(FieldBalance)

	result := &AdapterResult{
		File:      filepath.Base(path),
		Origin:    a.origin,
		HeaderRow: headerIdx + 1,
		Rows:      make(inventory.Table, 0, len(table.Rows)),
	}

	for _, row := range table.Rows {
		if isEmptyRow(row) {
			result.Dropped++
			continue
		}

		qty, ok := ParseQuantity(Cell(row, balanceIdx))
		if !ok {
			result.Malformed++
		}

		description, location := SplitProductName(Cell(row, nameIdx))

		result.Rows = append(result.Rows, inventory.Row{
			Reference:      strings.TrimSpace(Cell(row, refIdx)),
			Description:    description,
			Quantity:       qty,
			Origin:         a.origin,
			Location:       location,
			IdentifierCode: strings.TrimSpace(Cell(row, codeIdx)),
		})
	}

	return result, nil
}

// SplitProductName отделяет склад из завершающих скобок:
// "Motosierra (Bodega 2)" -> "Motosierra", "Bodega 2"
func SplitProductName(name string) (string, string) {
	name = strings.TrimSpace(name)
	loc := trailingLocation.FindStringSubmatchIndex(name)
	if loc == nil {
		return name, ""
	}
	return strings.TrimSpace(name[:loc[0]]), strings.TrimSpace(name[loc[2]:loc[3]])
}
