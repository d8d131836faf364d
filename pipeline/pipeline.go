package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inventario/analysis"
	"inventario/consolidation"
	"inventario/importer"
	"inventario/internal/config"
	"inventario/internal/domain/inventory"
	"inventario/physicalcount"
	"inventario/workbook"

	"github.com/google/uuid"
)

// Config параметры прогона
type Config struct {
	InputDir          string
	OutputDir         string
	ConsolidatedFile  string
	AnalysisFile      string
	PhysicalCountFile string

	Brands        []inventory.Origin
	SystemMarkers []string
	BrandFields   []importer.FieldAliases
	SystemFields  []importer.FieldAliases

	Export physicalcount.Options
}

// ConfigFrom собирает параметры прогона из конфигурации приложения
// и применяет файл замен алиасов, если он задан
func ConfigFrom(cfg *config.Config) (Config, error) {
	pc := Config{
		InputDir:          cfg.InputDir,
		OutputDir:         cfg.OutputDir,
		ConsolidatedFile:  cfg.ConsolidatedFile,
		AnalysisFile:      cfg.AnalysisFile,
		PhysicalCountFile: cfg.PhysicalCountFile,
		Brands:            cfg.BrandOrigins(),
		SystemMarkers:     cfg.SystemFileMarkers,
		BrandFields:       importer.DefaultBrandFields(),
		SystemFields:      importer.DefaultSystemFields(),
		Export: physicalcount.Options{
			PrimaryWarehouse: cfg.PrimaryWarehouse,
			ZeroWarehouses:   cfg.ActiveZeroWarehouses(),
		},
	}

	if cfg.AliasesFile == "" {
		return pc, nil
	}

	overrides, err := importer.LoadAliasOverrides(cfg.AliasesFile)
	if err != nil {
		return Config{}, err
	}
	if pc.BrandFields, err = importer.ApplyOverrides(pc.BrandFields, overrides.Brand); err != nil {
		return Config{}, fmt.Errorf("brand aliases: %w", err)
	}
	if pc.SystemFields, err = importer.ApplyOverrides(pc.SystemFields, overrides.System); err != nil {
		return Config{}, fmt.Errorf("system aliases: %w", err)
	}
	return pc, nil
}

// Artifacts пути выходных файлов
type Artifacts struct {
	Consolidated  string `json:"consolidated"`
	Analysis      string `json:"analysis"`
	PhysicalCount string `json:"physical_count"`
}

// SourceReport итог чтения одного источника
type SourceReport struct {
	File      string           `json:"file"`
	Origin    inventory.Origin `json:"origin"`
	HeaderRow int              `json:"header_row"`
	Rows      int              `json:"rows"`
	Dropped   int              `json:"dropped"`
	Malformed int              `json:"malformed"`
}

// RunResult итог прогона; при ошибке заполнены только завершенные этапы
type RunResult struct {
	RunID            string                  `json:"run_id"`
	StartedAt        time.Time               `json:"started_at"`
	FinishedAt       time.Time               `json:"finished_at"`
	Sources          []SourceReport          `json:"sources,omitempty"`
	ConsolidatedRows int                     `json:"consolidated_rows"`
	Summary          *inventory.SummaryStats `json:"summary,omitempty"`
	ExportRows       int                     `json:"export_rows"`
	Artifacts        Artifacts               `json:"artifacts"`
	Error            string                  `json:"error,omitempty"`
}

// Pipeline три этапа сверки: консолидация, анализ, файл импорта.
// Этапы передают данные через выходные файлы.
type Pipeline struct {
	cfg  Config
	sink Sink
}

// New создает конвейер
func New(cfg Config, sink Sink) *Pipeline {
	if len(cfg.Brands) == 0 {
		cfg.Brands = inventory.DefaultBrands
	}
	if cfg.ConsolidatedFile == "" {
		cfg.ConsolidatedFile = workbook.ConsolidatedFile
	}
	if cfg.AnalysisFile == "" {
		cfg.AnalysisFile = workbook.AnalysisFile
	}
	if cfg.PhysicalCountFile == "" {
		cfg.PhysicalCountFile = workbook.PhysicalCountFile
	}
	if sink == nil {
		sink = NewSlogSink(nil)
	}
	return &Pipeline{cfg: cfg, sink: sink}
}

// Artifacts пути выходных файлов прогона
func (p *Pipeline) Artifacts() Artifacts {
	return Artifacts{
		Consolidated:  filepath.Join(p.cfg.OutputDir, p.cfg.ConsolidatedFile),
		Analysis:      filepath.Join(p.cfg.OutputDir, p.cfg.AnalysisFile),
		PhysicalCount: filepath.Join(p.cfg.OutputDir, p.cfg.PhysicalCountFile),
	}
}

// Run выполняет все этапы по порядку и останавливается на первой ошибке.
// Файлы завершенных этапов остаются на месте.
func (p *Pipeline) Run() (*RunResult, error) {
	result := &RunResult{RunID: uuid.NewString(), StartedAt: time.Now()}
	defer func() { result.FinishedAt = time.Now() }()

	fail := func(err error) (*RunResult, error) {
		result.Error = err.Error()
		return result, err
	}

	p.sink.Log(fmt.Sprintf("Iniciando proceso %s", result.RunID), SeverityInfo)

	inputs, err := importer.DiscoverInputs(p.cfg.InputDir, p.cfg.Brands, p.cfg.SystemMarkers)
	if err != nil {
		return fail(p.fail("búsqueda de archivos", err))
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fail(p.fail("preparación de salida", &inventory.OutputWriteError{Path: p.cfg.OutputDir, Err: err}))
	}

	table, sources, err := p.Consolidate(inputs)
	result.Sources = sources
	if err != nil {
		return fail(err)
	}
	result.ConsolidatedRows = len(table)
	result.Artifacts.Consolidated = p.Artifacts().Consolidated

	analyzed, err := p.Analyze()
	if err != nil {
		return fail(err)
	}
	result.Summary = &analyzed.Summary
	result.Artifacts.Analysis = p.Artifacts().Analysis

	export, err := p.ExportPhysicalCount()
	if err != nil {
		return fail(err)
	}
	result.ExportRows = len(export)
	result.Artifacts.PhysicalCount = p.Artifacts().PhysicalCount

	p.sink.Log("Proceso completado", SeveritySuccess)
	return result, nil
}

// Consolidate читает источники и пишет консолидированную таблицу
func (p *Pipeline) Consolidate(inputs *importer.InputFiles) (inventory.Table, []SourceReport, error) {
	sources := make([]consolidation.Source, 0, len(p.cfg.Brands)+1)
	for _, brand := range p.cfg.Brands {
		sources = append(sources, consolidation.Source{
			Adapter: importer.NewBrandAdapter(brand, p.cfg.BrandFields),
			Path:    inputs.Brands[brand],
		})
	}
	sources = append(sources, consolidation.Source{
		Adapter: importer.NewSystemAdapter(inventory.SystemOrigin, p.cfg.SystemFields),
		Path:    inputs.System,
	})

	var reports []SourceReport
	table, err := consolidation.NewConsolidator(sources...).OnSource(func(r *importer.AdapterResult) {
		reports = append(reports, SourceReport{
			File:      r.File,
			Origin:    r.Origin,
			HeaderRow: r.HeaderRow,
			Rows:      len(r.Rows),
			Dropped:   r.Dropped,
			Malformed: r.Malformed,
		})
		p.sink.Log(fmt.Sprintf("%s: %d filas leídas (encabezado en fila %d)", r.File, len(r.Rows), r.HeaderRow), SeverityInfo)
		if r.Malformed > 0 {
			p.sink.Log(fmt.Sprintf("%s: %d cantidades no numéricas reemplazadas por 0", r.File, r.Malformed), SeverityWarning)
		}
	}).Build()
	if err != nil {
		return nil, reports, p.fail("consolidación", err)
	}

	path := p.Artifacts().Consolidated
	if err := workbook.WriteConsolidated(path, table, p.origins()); err != nil {
		return nil, reports, p.fail("consolidación", err)
	}

	p.sink.Log(fmt.Sprintf("Consolidado creado: %s (%d filas)", path, len(table)), SeveritySuccess)
	return table, reports, nil
}

// Analyze читает консолидированную таблицу и пишет сравнительный анализ
func (p *Pipeline) Analyze() (analysis.Result, error) {
	artifacts := p.Artifacts()

	p.sink.Log(fmt.Sprintf("Procesando archivo consolidado: %s", artifacts.Consolidated), SeverityInfo)
	table, err := workbook.ReadConsolidated(artifacts.Consolidated)
	if err != nil {
		return analysis.Result{}, p.fail("análisis comparativo", err)
	}

	result := analysis.Analyze(table, p.cfg.Brands)
	if err := workbook.WriteAnalysis(artifacts.Analysis, result, p.cfg.Brands); err != nil {
		return analysis.Result{}, p.fail("análisis comparativo", err)
	}

	s := result.Summary
	p.sink.Log(fmt.Sprintf("Análisis comparativo creado: %s", artifacts.Analysis), SeveritySuccess)
	p.sink.Log(fmt.Sprintf("Referencias: %d, con diferencia: %d, faltantes: %d, sobrantes: %d, diferencia neta: %g",
		s.Total, s.NonZero, s.SystemOverstates, s.ManualOverstates, s.SumDifference), SeverityInfo)
	return result, nil
}

// ExportPhysicalCount читает анализ и пишет файл импорта физического пересчета
func (p *Pipeline) ExportPhysicalCount() ([]inventory.ExportRow, error) {
	artifacts := p.Artifacts()

	rows, err := workbook.ReadAnalysis(artifacts.Analysis, p.cfg.Brands)
	if err != nil {
		return nil, p.fail("archivo de importación", err)
	}

	export := physicalcount.Build(rows, p.cfg.Export)
	if err := workbook.WritePhysicalCount(artifacts.PhysicalCount, export); err != nil {
		return nil, p.fail("archivo de importación", err)
	}

	p.sink.Log(fmt.Sprintf("Archivo de importación creado: %s (%d filas)", artifacts.PhysicalCount, len(export)), SeveritySuccess)
	return export, nil
}

func (p *Pipeline) origins() []inventory.Origin {
	origins := append([]inventory.Origin(nil), p.cfg.Brands...)
	return append(origins, inventory.SystemOrigin)
}

// fail сообщает об ошибке этапа и возвращает ее без изменений
func (p *Pipeline) fail(stage string, err error) error {
	p.sink.Log(fmt.Sprintf("Error en %s: %v", stage, err), SeverityError)
	return err
}
