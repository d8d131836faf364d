package workbook

// Имена выходных файлов по умолчанию
const (
	ConsolidatedFile  = "Consolidado_Inventarios.xlsx"
	AnalysisFile      = "Analisis_Comparativo.xlsx"
	PhysicalCountFile = "Importacion_conteo_fisico.xlsx"
)

// Имена листов
const (
	ConsolidatedSheet  = "Consolidado"
	AnalysisSheet      = "Comparativo"
	SummarySheet       = "Resumen"
	PhysicalCountSheet = "Datos"
)

// Колонки консолидированной таблицы
const (
	ColReference      = "REFERENCIA"
	ColDescription    = "DESCRIPCION"
	ColQuantity       = "CANTIDAD"
	ColOrigin         = "ORIGEN"
	ColLocation       = "UBICACION"
	ColIdentifierCode = "CODIGO_SIIGO"
)

// Колонки сравнительного анализа
const (
	ColBrand          = "MARCA"
	ColManual         = "INVENTARIO MANUAL"
	ColSystem         = "INVENTARIO SIIGO"
	ColDifference     = "DIFERENCIA"
	ColStatus         = "ESTADO"
	ColLocationBrand  = "UBICACION_MARCAS"
	ColLocationSystem = "UBICACION_SIIGO"
)

// Колонки файла импорта физического пересчета в учетную систему
const (
	ColExportProductCode = "Código del producto \n(obligatorio) "
	ColExportLabel       = "Nombre del producto / Servicio"
	ColExportReference   = "Referencia de fábrica"
	ColExportWarehouse   = "Código de Bodega"
	ColExportQuantity    = "Existencias contadas \n(obligatorio)"
)

// consolidatedColumns канонические колонки консолидированной таблицы
var consolidatedColumns = []string{
	ColReference, ColDescription, ColQuantity, ColOrigin, ColLocation, ColIdentifierCode,
}

var exportColumns = []string{
	ColExportProductCode, ColExportLabel, ColExportReference, ColExportWarehouse, ColExportQuantity,
}

// Подписи показателей листа сводки
const (
	MetricTotal            = "Total referencias"
	MetricNonZero          = "Referencias con diferencia"
	MetricSystemOverstates = "Faltantes (SIIGO mayor)"
	MetricManualOverstates = "Sobrantes (conteo mayor)"
	MetricSumDifference    = "Diferencia neta"
)
