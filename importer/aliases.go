package importer

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Канонические поля файлов марок
const (
	FieldReference   = "REFERENCIA"
	FieldDescription = "DESCRIPCION"
	FieldQuantity    = "CANTIDAD"
	FieldLocation    = "UBICACION"
)

// Канонические поля выгрузки учетной системы
const (
	FieldProductCode      = "CODIGO_PRODUCTO"
	FieldProductName      = "NOMBRE_PRODUCTO"
	FieldFactoryReference = "REFERENCIA_FABRICA"
	FieldBalance          = "SALDO_CANTIDADES"
)

// FieldAliases каноническое поле и допустимые заголовки колонки.
// Detect сужает набор алиасов для поиска строки заголовков; пустой Detect означает Aliases.
type FieldAliases struct {
	Field    string   `yaml:"field"`
	Aliases  []string `yaml:"aliases"`
	Detect   []string `yaml:"detect,omitempty"`
	Required bool     `yaml:"required"`
}

// DetectAliases алиасы, по которым ищется строка заголовков
func (f FieldAliases) DetectAliases() []string {
	if len(f.Detect) > 0 {
		return f.Detect
	}
	return f.Aliases
}

// DefaultBrandFields таблица алиасов для файлов ручного пересчета
func DefaultBrandFields() []FieldAliases {
	return []FieldAliases{
		{Field: FieldReference, Required: true, Aliases: []string{"REFERENCIA", "CODIGO", "SKU", "MODELO", "PART NUMBER"}},
		{Field: FieldDescription, Required: true, Aliases: []string{"NOMBRE", "DESCRIPCION", "DESCRIPCIÓN", "DESCRIP", "PRODUCTO"}},
		{Field: FieldQuantity, Required: true, Aliases: []string{"CANTIDAD", "QTY", "QUANTITY", "STOCK"}},
		{Field: FieldLocation, Aliases: []string{"UBICACION", "UBICACIÓN", "LOCALIZACION", "ALMACEN"}},
	}
}

// DefaultSystemFields таблица алиасов для выгрузки оценки запасов
func DefaultSystemFields() []FieldAliases {
	return []FieldAliases{
		{
			Field:    FieldProductCode,
			Required: true,
			Aliases:  []string{"CÓDIGO PRODUCTO", "CODIGO PRODUCTO", "CODIGO", "CODIGO SIIGO"},
			Detect:   []string{"CÓDIGO PRODUCTO", "CODIGO PRODUCTO", "CODIGO"},
		},
		{Field: FieldProductName, Aliases: []string{"NOMBRE PRODUCTO", "DESCRIPCION", "PRODUCTO", "NOMBRE"}},
		{
			Field:    FieldFactoryReference,
			Required: true,
			Aliases:  []string{"REFERENCIA FÁBRICA", "REFERENCIA FABRICA", "REFERENCIA", "SKU", "MODELO"},
			Detect:   []string{"REFERENCIA FÁBRICA", "REFERENCIA FABRICA", "REFERENCIA"},
		},
		{
			Field:    FieldBalance,
			Required: true,
			Aliases:  []string{"SALDO CANTIDADES", "SALDO", "CANTIDAD", "STOCK", "EXISTENCIAS"},
			Detect:   []string{"SALDO CANTIDADES", "SALDO", "CANTIDAD"},
		},
	}
}

// RequiredAliasSets наборы алиасов обязательных полей для FindHeaderRow
func RequiredAliasSets(fields []FieldAliases) [][]string {
	var sets [][]string
	for _, field := range fields {
		if field.Required {
			sets = append(sets, field.DetectAliases())
		}
	}
	return sets
}

// RequiredFieldNames имена обязательных полей
func RequiredFieldNames(fields []FieldAliases) []string {
	var names []string
	for _, field := range fields {
		if field.Required {
			names = append(names, field.Field)
		}
	}
	return names
}

// AliasOverrides замены алиасов из YAML-файла: поле -> список заголовков
type AliasOverrides struct {
	Brand  map[string][]string `yaml:"brand"`
	System map[string][]string `yaml:"system"`
}

// LoadAliasOverrides читает файл замен алиасов
func LoadAliasOverrides(path string) (*AliasOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read aliases file: %w", err)
	}

	var overrides AliasOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse aliases file %s: %w", path, err)
	}
	return &overrides, nil
}

// ApplyOverrides заменяет алиасы известных полей; неизвестное поле - ошибка конфигурации
func ApplyOverrides(fields []FieldAliases, overrides map[string][]string) ([]FieldAliases, error) {
	result := make([]FieldAliases, len(fields))
	copy(result, fields)

	known := make(map[string]int, len(result))
	for i, field := range result {
		known[field.Field] = i
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		idx, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown field %q in aliases file", name)
		}
		aliases := overrides[name]
		if len(aliases) == 0 {
			return nil, fmt.Errorf("field %q has no aliases", name)
		}
		result[idx].Aliases = append([]string(nil), aliases...)
		result[idx].Detect = nil
	}
	return result, nil
}
