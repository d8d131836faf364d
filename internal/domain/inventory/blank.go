package inventory

import "strings"

// missingMarkers текстовые остатки отсутствующих значений
var missingMarkers = map[string]bool{
	"":    true,
	"nan": true,
}

// IsBlank сообщает, что значение пустое или является маркером отсутствия
func IsBlank(value string) bool {
	return missingMarkers[strings.ToLower(strings.TrimSpace(value))]
}

// CleanText обрезает пробелы и схлопывает маркеры отсутствия в пустую строку
func CleanText(value string) string {
	if IsBlank(value) {
		return ""
	}
	return strings.TrimSpace(value)
}

// NormalizeReference нормализует ключ сопоставления
func NormalizeReference(value string) string {
	return CleanText(value)
}
