package inventory

// Origin источник строки: одна из ручных марок или учетная система
type Origin string

const (
	// SystemOrigin учетная система (выгрузка оценки запасов)
	SystemOrigin Origin = "SIIGO"
)

// DefaultBrands марки с ручным пересчетом в порядке обработки
var DefaultBrands = []Origin{"STIHL", "SUZUKI", "YAMAHA"}

// IsSystem сообщает, что строка пришла из учетной системы
func (o Origin) IsSystem() bool {
	return o == SystemOrigin
}

// IsManual сообщает, что строка пришла из ручного пересчета
func (o Origin) IsManual() bool {
	return o != "" && o != SystemOrigin
}

// Row каноническая строка после адаптера источника.
// Quantity всегда конечное число, Origin всегда заполнен.
type Row struct {
	Reference      string  `json:"reference"`
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	Origin         Origin  `json:"origin"`
	Location       string  `json:"location"`
	IdentifierCode string  `json:"identifier_code"`
}

// Table упорядоченный набор канонических строк без дедупликации
type Table []Row

// AnalysisRow строка сравнительного анализа
type AnalysisRow struct {
	Reference       string             `json:"reference"`
	Description     string             `json:"description"`
	Origins         string             `json:"origins"`
	Brand           string             `json:"brand"`
	BrandQuantities map[Origin]float64 `json:"brand_quantities,omitempty"`
	ManualQuantity  float64            `json:"manual_quantity"`
	SystemQuantity  float64            `json:"system_quantity"`
	Difference      float64            `json:"difference"`
	LocationBrand   string             `json:"location_brand"`
	LocationSystem  string             `json:"location_system"`
	IdentifierCodes string             `json:"identifier_codes"`
	Keyed           bool               `json:"keyed"`
}

// SummaryStats сводные показатели анализа
type SummaryStats struct {
	Total            int     `json:"total"`
	NonZero          int     `json:"non_zero"`
	SystemOverstates int     `json:"system_overstates"`
	ManualOverstates int     `json:"manual_overstates"`
	SumDifference    float64 `json:"sum_difference"`
}

// ExportRow строка файла импорта физического пересчета
type ExportRow struct {
	ProductCode      string  `json:"product_code"`
	Label            string  `json:"label"`
	FactoryReference string  `json:"factory_reference"`
	WarehouseCode    string  `json:"warehouse_code"`
	CountedQuantity  float64 `json:"counted_quantity"`
}
