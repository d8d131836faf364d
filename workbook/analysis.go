package workbook

import (
	"path/filepath"

	"inventario/analysis"
	"inventario/importer"
	"inventario/internal/domain/inventory"
)

// analysisHeaders колонки листа сравнения с колонками марок после MARCA
func analysisHeaders(brands []inventory.Origin) []string {
	headers := []string{ColReference, ColDescription, ColOrigin, ColBrand}
	for _, brand := range brands {
		headers = append(headers, string(brand))
	}
	return append(headers,
		ColManual, ColSystem, ColDifference, ColStatus,
		ColLocationBrand, ColLocationSystem, ColIdentifierCode,
	)
}

// WriteAnalysis пишет лист сравнения с заливкой расхождений и лист сводки
func WriteAnalysis(path string, result analysis.Result, brands []inventory.Origin) error {
	w, err := newSheetWriter(path, AnalysisSheet)
	if err != nil {
		return err
	}
	defer w.Close()

	headers := analysisHeaders(brands)
	if err := w.writeHeader(AnalysisSheet, headers); err != nil {
		return err
	}

	styles, err := w.fillStyles()
	if err != nil {
		return err
	}

	tags := analysis.Annotate(result.Rows)
	for i, row := range result.Rows {
		values := []interface{}{row.Reference, row.Description, row.Origins, row.Brand}
		for _, brand := range brands {
			values = append(values, row.BrandQuantities[brand])
		}
		values = append(values,
			row.ManualQuantity, row.SystemQuantity, row.Difference, tags[i].Label(),
			row.LocationBrand, row.LocationSystem, row.IdentifierCodes,
		)
		if err := w.writeRow(AnalysisSheet, i, values); err != nil {
			return err
		}
		if style, ok := styles[tags[i]]; ok {
			if err := w.styleRow(AnalysisSheet, i, len(headers), style); err != nil {
				return err
			}
		}
	}

	if err := w.addSheet(SummarySheet); err != nil {
		return err
	}
	if err := w.writeHeader(SummarySheet, []string{"METRICA", "VALOR"}); err != nil {
		return err
	}
	for i, metric := range summaryRows(result.Summary) {
		if err := w.writeRow(SummarySheet, i, metric); err != nil {
			return err
		}
	}

	return w.save()
}

func summaryRows(stats inventory.SummaryStats) [][]interface{} {
	return [][]interface{}{
		{MetricTotal, stats.Total},
		{MetricNonZero, stats.NonZero},
		{MetricSystemOverstates, stats.SystemOverstates},
		{MetricManualOverstates, stats.ManualOverstates},
		{MetricSumDifference, stats.SumDifference},
	}
}

// ReadAnalysis читает лист сравнения, записанный WriteAnalysis
func ReadAnalysis(path string, brands []inventory.Origin) ([]inventory.AnalysisRow, error) {
	sheet, err := importer.ReadSheet(path)
	if err != nil {
		return nil, err
	}

	table := importer.HeaderedTable(sheet.Rows, 0)
	required := []string{
		ColReference, ColDescription, ColManual, ColSystem, ColDifference,
		ColLocationBrand, ColLocationSystem, ColIdentifierCode,
	}
	for _, col := range required {
		if !table.Has(col) {
			return nil, &inventory.MissingColumnError{
				File:      filepath.Base(path),
				Column:    col,
				Available: table.Columns,
			}
		}
	}

	text := func(row []string, col string) string {
		return inventory.CleanText(importer.Cell(row, table.Index(col)))
	}
	number := func(row []string, col string) float64 {
		v, _ := importer.ParseQuantity(importer.Cell(row, table.Index(col)))
		return v
	}

	rows := make([]inventory.AnalysisRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		ar := inventory.AnalysisRow{
			Reference:       text(row, ColReference),
			Description:     text(row, ColDescription),
			Origins:         text(row, ColOrigin),
			Brand:           text(row, ColBrand),
			BrandQuantities: make(map[inventory.Origin]float64, len(brands)),
			ManualQuantity:  number(row, ColManual),
			SystemQuantity:  number(row, ColSystem),
			Difference:      number(row, ColDifference),
			LocationBrand:   text(row, ColLocationBrand),
			LocationSystem:  text(row, ColLocationSystem),
			IdentifierCodes: text(row, ColIdentifierCode),
		}
		ar.Keyed = ar.Reference != ""
		for _, brand := range brands {
			if table.Has(string(brand)) {
				ar.BrandQuantities[brand] = number(row, string(brand))
			}
		}
		rows = append(rows, ar)
	}
	return rows, nil
}
