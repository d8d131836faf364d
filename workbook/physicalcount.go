package workbook

import (
	"inventario/internal/domain/inventory"
)

// WritePhysicalCount пишет файл импорта физического пересчета
func WritePhysicalCount(path string, rows []inventory.ExportRow) error {
	w, err := newSheetWriter(path, PhysicalCountSheet)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.writeHeader(PhysicalCountSheet, exportColumns); err != nil {
		return err
	}

	for i, row := range rows {
		values := []interface{}{
			row.ProductCode, row.Label, row.FactoryReference, row.WarehouseCode, row.CountedQuantity,
		}
		if err := w.writeRow(PhysicalCountSheet, i, values); err != nil {
			return err
		}
	}

	return w.save()
}
