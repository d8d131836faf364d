package importer

import (
	"math"
	"strconv"
	"strings"

	"inventario/internal/domain/inventory"
)

// ParseQuantity приводит значение ячейки к числу.
// Пустое значение дает 0 и ok=true; нечисловое, шестнадцатеричное, NaN и
// бесконечность дают 0 и ok=false.
func ParseQuantity(value string) (float64, bool) {
	if inventory.IsBlank(value) {
		return 0, true
	}

	value = strings.TrimSpace(value)
	if isHexLiteral(value) {
		return 0, false
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

// isHexLiteral распознает запись 0x..., которую принимает strconv.ParseFloat
func isHexLiteral(value string) bool {
	value = strings.TrimLeft(value, "+-")
	return len(value) >= 2 && value[0] == '0' && (value[1] == 'x' || value[1] == 'X')
}
