package physicalcount

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"inventario/internal/domain/inventory"
)

// Склады по умолчанию
const (
	DefaultPrimaryWarehouse   = "3-Almacén"
	DefaultEcommerceWarehouse = "1-E-COMMERCE"
)

// DefaultZeroWarehouses склады, остатки которых обнуляются при импорте.
// Пустой код тоже склад: так учетная система обнуляет остаток без склада.
func DefaultZeroWarehouses() []string {
	return []string{DefaultEcommerceWarehouse, ""}
}

// Options параметры построения файла импорта
type Options struct {
	PrimaryWarehouse string
	ZeroWarehouses   []string
}

// DefaultOptions параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		PrimaryWarehouse: DefaultPrimaryWarehouse,
		ZeroWarehouses:   DefaultZeroWarehouses(),
	}
}

// Build строит строки файла импорта физического пересчета.
// В импорт попадают только строки ровно с одним кодом учетной системы.
func Build(rows []inventory.AnalysisRow, opts Options) []inventory.ExportRow {
	if opts.PrimaryWarehouse == "" {
		opts.PrimaryWarehouse = DefaultPrimaryWarehouse
	}

	eligible := make([]inventory.AnalysisRow, 0, len(rows))
	for _, row := range rows {
		if SingleCode(row.IdentifierCodes) {
			eligible = append(eligible, row)
		}
	}

	export := make([]inventory.ExportRow, 0, len(eligible)*(1+len(opts.ZeroWarehouses)))
	for _, row := range eligible {
		export = append(export, exportRow(row, opts.PrimaryWarehouse, row.ManualQuantity))
	}
	for _, warehouse := range opts.ZeroWarehouses {
		for _, row := range eligible {
			export = append(export, exportRow(row, warehouse, 0))
		}
	}

	sort.SliceStable(export, func(i, j int) bool {
		return codeLess(export[i].ProductCode, export[j].ProductCode)
	})
	return export
}

func exportRow(row inventory.AnalysisRow, warehouse string, qty float64) inventory.ExportRow {
	return inventory.ExportRow{
		ProductCode:      strings.TrimSpace(row.IdentifierCodes),
		Label:            Label(row.Description, row.LocationBrand, row.LocationSystem),
		FactoryReference: row.Reference,
		WarehouseCode:    warehouse,
		CountedQuantity:  qty,
	}
}

// SingleCode сообщает, что в ячейке ровно один код
func SingleCode(codes string) bool {
	codes = strings.TrimSpace(codes)
	return codes != "" && !strings.Contains(codes, ",")
}

// Label описание с местом хранения в скобках; место из пересчета важнее места из системы
func Label(description, brandLocation, systemLocation string) string {
	location := strings.TrimSpace(brandLocation)
	if location == "" {
		location = strings.TrimSpace(systemLocation)
	}
	if location == "" {
		return description
	}
	return fmt.Sprintf("%s (%s)", description, location)
}

// codeLess: целые коды по числовому значению и раньше остальных, прочие по строке
func codeLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
