package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"inventario/internal/domain/inventory"
	"inventario/workbook"
)

var validLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация каталогов
	if c.InputDir == "" {
		errors = append(errors, "input directory is required")
	}
	if c.OutputDir == "" {
		errors = append(errors, "output directory is required")
	}

	// Валидация выходных файлов
	outputs := map[string]string{
		"consolidated file":   c.ConsolidatedFile,
		"analysis file":       c.AnalysisFile,
		"physical count file": c.PhysicalCountFile,
	}
	seen := make(map[string]string, len(outputs))
	for _, name := range []string{"consolidated file", "analysis file", "physical count file"} {
		file := outputs[name]
		switch {
		case file == "":
			errors = append(errors, fmt.Sprintf("%s is required", name))
		case filepath.Base(file) != file:
			errors = append(errors, fmt.Sprintf("%s must be a file name, got %s", name, file))
		case !strings.EqualFold(filepath.Ext(file), ".xlsx"):
			errors = append(errors, fmt.Sprintf("%s must have .xlsx extension, got %s", name, file))
		}
		if other, ok := seen[strings.ToLower(file)]; ok && file != "" {
			errors = append(errors, fmt.Sprintf("%s and %s must differ", other, name))
		}
		seen[strings.ToLower(file)] = name
	}

	// Валидация источников
	if len(c.Brands) == 0 {
		errors = append(errors, "at least one brand is required")
	}
	brands := make(map[string]bool, len(c.Brands))
	for _, brand := range c.Brands {
		upper := strings.ToUpper(brand)
		if brands[upper] {
			errors = append(errors, fmt.Sprintf("duplicate brand: %s", brand))
		}
		if strings.EqualFold(brand, string(inventory.SystemOrigin)) {
			errors = append(errors, fmt.Sprintf("brand %s conflicts with system origin", brand))
		}
		brands[upper] = true
	}
	if len(c.SystemFileMarkers) == 0 {
		errors = append(errors, "at least one system file marker is required")
	}
	if c.AliasesFile != "" {
		if _, err := os.Stat(c.AliasesFile); err != nil {
			errors = append(errors, fmt.Sprintf("aliases file is not readable: %v", err))
		}
	}

	// Валидация складов
	if c.PrimaryWarehouse == "" {
		errors = append(errors, "primary warehouse is required")
	}
	for _, wh := range c.ZeroWarehouses {
		if wh == c.PrimaryWarehouse {
			errors = append(errors, fmt.Sprintf("zero warehouse %s duplicates primary warehouse", wh))
		}
	}

	// Валидация логирования
	if c.LogLevel != "" && !validLogLevels[strings.ToUpper(c.LogLevel)] {
		errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: DEBUG, INFO, WARN, ERROR)", c.LogLevel))
	}
	if c.LogFormat != "" && !validLogFormats[strings.ToLower(c.LogFormat)] {
		errors = append(errors, fmt.Sprintf("invalid log format: %s (valid: json, text)", c.LogFormat))
	}

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.RunRateLimitPerMin < 0 {
		errors = append(errors, "run rate limit must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults возвращает конфигурацию со значениями по умолчанию
func GetDefaults() *Config {
	return &Config{
		InputDir:              "inputs",
		OutputDir:             "outputs",
		ConsolidatedFile:      workbook.ConsolidatedFile,
		AnalysisFile:          workbook.AnalysisFile,
		PhysicalCountFile:     workbook.PhysicalCountFile,
		Brands:                []string{"STIHL", "SUZUKI", "YAMAHA"},
		SystemFileMarkers:     []string{"VALORACION", "VALORACIÓN"},
		PrimaryWarehouse:      "3-Almacén",
		ZeroWarehouses:        []string{"1-E-COMMERCE", ""},
		IncludeZeroWarehouses: true,
		LogLevel:              "INFO",
		LogFormat:             "json",
		Port:                  "9999",
		RunRateLimitPerMin:    6,
	}
}
