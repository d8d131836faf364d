package inventory

// DifferenceTag классификация расхождения для отчета
type DifferenceTag string

const (
	TagSurplus DifferenceTag = "surplus"
	TagDeficit DifferenceTag = "deficit"
	TagNeutral DifferenceTag = "neutral"
)

// ClassifyDifference: > 0 излишек по ручному пересчету, < 0 недостача
func ClassifyDifference(diff float64) DifferenceTag {
	switch {
	case diff > 0:
		return TagSurplus
	case diff < 0:
		return TagDeficit
	default:
		return TagNeutral
	}
}

// Label подпись тега для листа отчета
func (t DifferenceTag) Label() string {
	switch t {
	case TagSurplus:
		return "SOBRANTE"
	case TagDeficit:
		return "FALTANTE"
	default:
		return ""
	}
}

// PresenceKind вид присутствия марок в группе
type PresenceKind int

const (
	PresenceNone PresenceKind = iota
	PresenceSingle
	PresenceMultiple
)

// MultipleBrandsLabel подпись для строк с несколькими марками
const MultipleBrandsLabel = "VARIAS"

// BrandPresence результат классификации: ни одной, одна марка или несколько
type BrandPresence struct {
	Kind  PresenceKind
	Brand Origin
}

// String возвращает подпись для отчета
func (p BrandPresence) String() string {
	switch p.Kind {
	case PresenceSingle:
		return string(p.Brand)
	case PresenceMultiple:
		return MultipleBrandsLabel
	default:
		return ""
	}
}

// ClassifyBrands определяет, у каких марок ненулевое количество
func ClassifyBrands(brands []Origin, quantities map[Origin]float64) BrandPresence {
	result := BrandPresence{Kind: PresenceNone}
	for _, brand := range brands {
		if quantities[brand] == 0 {
			continue
		}
		if result.Kind == PresenceSingle {
			return BrandPresence{Kind: PresenceMultiple}
		}
		result = BrandPresence{Kind: PresenceSingle, Brand: brand}
	}
	return result
}
