package importer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// HeaderNotFound FindHeaderRow не нашел подходящую строку
const HeaderNotFound = -1

// NormalizeHeader приводит значение ячейки к виду для сравнения с алиасами
func NormalizeHeader(value string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFC.String(value)))
}

// FindHeaderRow возвращает индекс первой строки, в которой для каждого набора
// алиасов встречается хотя бы одно значение
func FindHeaderRow(rows [][]string, aliasSets [][]string) int {
	normalizedSets := make([]map[string]bool, len(aliasSets))
	for i, set := range aliasSets {
		normalizedSets[i] = make(map[string]bool, len(set))
		for _, alias := range set {
			normalizedSets[i][NormalizeHeader(alias)] = true
		}
	}

	for idx, row := range rows {
		values := make(map[string]bool, len(row))
		for _, cell := range row {
			values[NormalizeHeader(cell)] = true
		}
		if rowSatisfies(values, normalizedSets) {
			return idx
		}
	}

	return HeaderNotFound
}

func rowSatisfies(values map[string]bool, sets []map[string]bool) bool {
	for _, set := range sets {
		found := false
		for alias := range set {
			if values[alias] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MapColumns переименовывает колонки в канонические имена полей.
// Поля проверяются в порядке таблицы; несопоставленные колонки не меняются.
// Если две колонки сопоставлены одному полю, Table.Index вернет последнюю.
func MapColumns(columns []string, fields []FieldAliases) []string {
	mapped := make([]string, len(columns))
	for i, col := range columns {
		mapped[i] = col
		normalized := NormalizeHeader(col)
		if normalized == "" {
			continue
		}
		if field, ok := matchField(normalized, fields); ok {
			mapped[i] = field
		}
	}
	return mapped
}

func matchField(normalized string, fields []FieldAliases) (string, bool) {
	for _, field := range fields {
		for _, alias := range field.Aliases {
			if NormalizeHeader(alias) == normalized {
				return field.Field, true
			}
		}
	}
	return "", false
}

// SampleRows первые n строк листа в нормализованном виде для диагностики
func SampleRows(rows [][]string, n int) [][]string {
	if n > len(rows) {
		n = len(rows)
	}
	sample := make([][]string, 0, n)
	for _, row := range rows[:n] {
		normalized := make([]string, len(row))
		for i, cell := range row {
			normalized[i] = NormalizeHeader(cell)
		}
		sample = append(sample, normalized)
	}
	return sample
}
