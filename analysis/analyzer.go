package analysis

import (
	"sort"
	"strings"

	"inventario/internal/domain/inventory"
)

// listSeparator разделитель списков в ячейках отчета
const listSeparator = ", "

// Result строки анализа и сводка по ним
type Result struct {
	Rows    []inventory.AnalysisRow `json:"rows"`
	Summary inventory.SummaryStats  `json:"summary"`
}

type group struct {
	rows []inventory.Row
}

// Analyze сопоставляет ручной пересчет с учетной системой.
// Строки с референцией группируются по ней (группы по возрастанию референции),
// строки без референции идут следом по одной в исходном порядке.
func Analyze(table inventory.Table, brands []inventory.Origin) Result {
	if len(brands) == 0 {
		brands = inventory.DefaultBrands
	}

	groups := make(map[string]*group)
	var keys []string
	var unkeyed []inventory.Row

	for _, row := range table {
		ref := inventory.NormalizeReference(row.Reference)
		if ref == "" {
			unkeyed = append(unkeyed, row)
			continue
		}
		g, ok := groups[ref]
		if !ok {
			g = &group{}
			groups[ref] = g
			keys = append(keys, ref)
		}
		g.rows = append(g.rows, row)
	}
	sort.Strings(keys)

	rows := make([]inventory.AnalysisRow, 0, len(keys)+len(unkeyed))
	for _, key := range keys {
		rows = append(rows, analyzeGroup(key, groups[key].rows, brands))
	}
	for _, row := range unkeyed {
		rows = append(rows, analyzeUnkeyed(row, brands))
	}

	return Result{Rows: rows, Summary: Summarize(rows)}
}

func analyzeGroup(ref string, rows []inventory.Row, brands []inventory.Origin) inventory.AnalysisRow {
	result := inventory.AnalysisRow{
		Reference:       ref,
		BrandQuantities: make(map[inventory.Origin]float64),
		Keyed:           true,
	}

	brandLocations := newStringSet()
	systemLocations := newStringSet()
	codes := newStringSet()
	origins := newStringSet()

	for _, row := range rows {
		if result.Description == "" {
			result.Description = inventory.CleanText(row.Description)
		}

		location := inventory.CleanText(row.Location)
		switch {
		case row.Origin.IsSystem():
			result.SystemQuantity += row.Quantity
			systemLocations.add(location)
		case row.Origin.IsManual():
			result.ManualQuantity += row.Quantity
			result.BrandQuantities[row.Origin] += row.Quantity
			brandLocations.add(location)
		}

		codes.add(inventory.CleanText(row.IdentifierCode))
		origins.add(string(row.Origin))
	}

	result.Difference = result.ManualQuantity - result.SystemQuantity
	result.LocationBrand = brandLocations.join()
	result.LocationSystem = systemLocations.join()
	result.IdentifierCodes = codes.join()
	result.Origins = origins.join()
	result.Brand = inventory.ClassifyBrands(brands, result.BrandQuantities).String()

	return result
}

func analyzeUnkeyed(row inventory.Row, brands []inventory.Origin) inventory.AnalysisRow {
	result := inventory.AnalysisRow{
		Description:     inventory.CleanText(row.Description),
		Origins:         string(row.Origin),
		BrandQuantities: make(map[inventory.Origin]float64),
		IdentifierCodes: inventory.CleanText(row.IdentifierCode),
	}

	location := inventory.CleanText(row.Location)
	switch {
	case row.Origin.IsSystem():
		result.SystemQuantity = row.Quantity
		result.Difference = -row.Quantity
		result.LocationSystem = location
	case row.Origin.IsManual():
		result.ManualQuantity = row.Quantity
		result.Difference = row.Quantity
		result.LocationBrand = location
		result.BrandQuantities[row.Origin] = row.Quantity
	}

	result.Brand = inventory.ClassifyBrands(brands, result.BrandQuantities).String()
	return result
}

// Summarize считает сводные показатели по строкам анализа
func Summarize(rows []inventory.AnalysisRow) inventory.SummaryStats {
	stats := inventory.SummaryStats{Total: len(rows)}
	for _, row := range rows {
		switch {
		case row.Difference < 0:
			stats.NonZero++
			stats.SystemOverstates++
		case row.Difference > 0:
			stats.NonZero++
			stats.ManualOverstates++
		}
		stats.SumDifference += row.Difference
	}
	return stats
}

// Annotate размечает строки тегом расхождения; оформление делает writer
func Annotate(rows []inventory.AnalysisRow) []inventory.DifferenceTag {
	tags := make([]inventory.DifferenceTag, len(rows))
	for i, row := range rows {
		tags[i] = inventory.ClassifyDifference(row.Difference)
	}
	return tags
}

// stringSet множество непустых строк с детерминированным выводом
type stringSet map[string]struct{}

func newStringSet() stringSet {
	return make(stringSet)
}

func (s stringSet) add(value string) {
	if value != "" {
		s[value] = struct{}{}
	}
}

func (s stringSet) join() string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return strings.Join(values, listSeparator)
}
