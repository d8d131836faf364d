package workbook

import (
	"path/filepath"

	"inventario/importer"
	"inventario/internal/domain/inventory"
)

// WriteConsolidated пишет консолидированную таблицу. Для каждого источника из origins
// добавляется колонка количества: количество строки под ее источником, 0 под остальными.
func WriteConsolidated(path string, table inventory.Table, origins []inventory.Origin) error {
	w, err := newSheetWriter(path, ConsolidatedSheet)
	if err != nil {
		return err
	}
	defer w.Close()

	headers := append([]string(nil), consolidatedColumns...)
	for _, origin := range origins {
		headers = append(headers, string(origin))
	}
	if err := w.writeHeader(ConsolidatedSheet, headers); err != nil {
		return err
	}

	for i, row := range table {
		values := []interface{}{
			row.Reference, row.Description, row.Quantity, string(row.Origin), row.Location, row.IdentifierCode,
		}
		for _, origin := range origins {
			qty := 0.0
			if row.Origin == origin {
				qty = row.Quantity
			}
			values = append(values, qty)
		}
		if err := w.writeRow(ConsolidatedSheet, i, values); err != nil {
			return err
		}
	}

	return w.save()
}

// ReadConsolidated читает консолидированную таблицу, записанную WriteConsolidated.
// Отсутствие канонической колонки - нарушение контракта этапа.
func ReadConsolidated(path string) (inventory.Table, error) {
	sheet, err := importer.ReadSheet(path)
	if err != nil {
		return nil, err
	}

	table := importer.HeaderedTable(sheet.Rows, 0)
	idx := make(map[string]int, len(consolidatedColumns))
	for _, col := range consolidatedColumns {
		i := table.Index(col)
		if i < 0 {
			return nil, &inventory.MissingColumnError{
				File:      filepath.Base(path),
				Column:    col,
				Available: table.Columns,
			}
		}
		idx[col] = i
	}

	result := make(inventory.Table, 0, len(table.Rows))
	for _, row := range table.Rows {
		qty, _ := importer.ParseQuantity(importer.Cell(row, idx[ColQuantity]))
		result = append(result, inventory.Row{
			Reference:      inventory.CleanText(importer.Cell(row, idx[ColReference])),
			Description:    inventory.CleanText(importer.Cell(row, idx[ColDescription])),
			Quantity:       qty,
			Origin:         inventory.Origin(inventory.CleanText(importer.Cell(row, idx[ColOrigin]))),
			Location:       inventory.CleanText(importer.Cell(row, idx[ColLocation])),
			IdentifierCode: inventory.CleanText(importer.Cell(row, idx[ColIdentifierCode])),
		})
	}
	return result, nil
}
