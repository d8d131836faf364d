package consolidation

import (
	"fmt"

	"inventario/importer"
	"inventario/internal/domain/inventory"
)

// Source файл-источник и адаптер, который его читает
type Source struct {
	Adapter importer.Adapter
	Path    string
}

// Consolidate склеивает выходы адаптеров в порядке передачи и чистит
// текстовые поля от маркеров отсутствия. Число строк не меняется.
func Consolidate(outputs ...inventory.Table) inventory.Table {
	total := 0
	for _, out := range outputs {
		total += len(out)
	}

	result := make(inventory.Table, 0, total)
	for _, out := range outputs {
		for _, row := range out {
			result = append(result, scrub(row))
		}
	}
	return result
}

func scrub(row inventory.Row) inventory.Row {
	row.Reference = inventory.CleanText(row.Reference)
	row.Description = inventory.CleanText(row.Description)
	row.Location = inventory.CleanText(row.Location)
	row.IdentifierCode = inventory.CleanText(row.IdentifierCode)
	return row
}

// Consolidator читает источники по очереди и объединяет результат
type Consolidator struct {
	sources  []Source
	observer func(*importer.AdapterResult)
}

// NewConsolidator создает консолидатор для источников в заданном порядке
func NewConsolidator(sources ...Source) *Consolidator {
	return &Consolidator{sources: sources}
}

// OnSource регистрирует обработчик, вызываемый после чтения каждого источника
func (c *Consolidator) OnSource(fn func(*importer.AdapterResult)) *Consolidator {
	c.observer = fn
	return c
}

// Build читает все источники; первая ошибка адаптера возвращается без изменений
func (c *Consolidator) Build() (inventory.Table, error) {
	if len(c.sources) == 0 {
		return nil, fmt.Errorf("no sources to consolidate")
	}

	outputs := make([]inventory.Table, 0, len(c.sources))
	for _, src := range c.sources {
		result, err := src.Adapter.Read(src.Path)
		if err != nil {
			return nil, err
		}
		if c.observer != nil {
			c.observer(result)
		}
		outputs = append(outputs, result.Rows)
	}

	return Consolidate(outputs...), nil
}
