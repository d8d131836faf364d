package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"inventario/internal/domain/inventory"

	"github.com/joho/godotenv"
)

// Config конфигурация сверки запасов
type Config struct {
	// Каталоги и выходные файлы
	InputDir          string `json:"input_dir"`
	OutputDir         string `json:"output_dir"`
	ConsolidatedFile  string `json:"consolidated_file"`
	AnalysisFile      string `json:"analysis_file"`
	PhysicalCountFile string `json:"physical_count_file"`

	// Источники
	Brands            []string `json:"brands"`
	SystemFileMarkers []string `json:"system_file_markers"`
	AliasesFile       string   `json:"aliases_file"`

	// Файл импорта физического пересчета
	PrimaryWarehouse      string   `json:"primary_warehouse"`
	ZeroWarehouses        []string `json:"zero_warehouses"`
	IncludeZeroWarehouses bool     `json:"include_zero_warehouses"`

	// Логирование
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
	LogFile   string `json:"log_file"`

	// Сервер
	Port               string `json:"port"`
	RunRateLimitPerMin int    `json:"run_rate_limit_per_min"`
}

// LoadConfig загружает .env (если есть) и читает конфигурацию из переменных окружения.
// Уже установленные переменные окружения имеют приоритет над .env.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	defaults := GetDefaults()
	config := &Config{
		// Каталоги и выходные файлы
		InputDir:          getEnv("INPUT_DIR", defaults.InputDir),
		OutputDir:         getEnv("OUTPUT_DIR", defaults.OutputDir),
		ConsolidatedFile:  getEnv("CONSOLIDATED_FILE", defaults.ConsolidatedFile),
		AnalysisFile:      getEnv("ANALYSIS_FILE", defaults.AnalysisFile),
		PhysicalCountFile: getEnv("PHYSICAL_COUNT_FILE", defaults.PhysicalCountFile),

		// Источники
		Brands:            getEnvList("BRANDS", ",", defaults.Brands),
		SystemFileMarkers: getEnvList("SYSTEM_FILE_MARKERS", ",", defaults.SystemFileMarkers),
		AliasesFile:       os.Getenv("ALIASES_FILE"),

		// Файл импорта
		PrimaryWarehouse:      getEnv("PRIMARY_WAREHOUSE", defaults.PrimaryWarehouse),
		ZeroWarehouses:        getEnvWarehouses("ZERO_WAREHOUSES", defaults.ZeroWarehouses),
		IncludeZeroWarehouses: getEnvBool("INCLUDE_ZERO_WAREHOUSES", defaults.IncludeZeroWarehouses),

		// Логирование
		LogLevel:  getEnv("LOG_LEVEL", defaults.LogLevel),
		LogFormat: getEnv("LOG_FORMAT", defaults.LogFormat),
		LogFile:   os.Getenv("LOG_FILE"),

		// Сервер
		Port:               getEnv("SERVER_PORT", defaults.Port),
		RunRateLimitPerMin: getEnvInt("RUN_RATE_LIMIT_PER_MIN", defaults.RunRateLimitPerMin),
	}

	// Валидация
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// BrandOrigins марки как теги источников; тег учетной системы фиксирован (inventory.SystemOrigin)
func (c *Config) BrandOrigins() []inventory.Origin {
	origins := make([]inventory.Origin, 0, len(c.Brands))
	for _, brand := range c.Brands {
		origins = append(origins, inventory.Origin(strings.ToUpper(brand)))
	}
	return origins
}

// ActiveZeroWarehouses склады для обнуления с учетом IncludeZeroWarehouses
func (c *Config) ActiveZeroWarehouses() []string {
	if !c.IncludeZeroWarehouses {
		return nil
	}
	return c.ZeroWarehouses
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool или возвращает значение по умолчанию
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvList разбивает переменную по sep, пустые элементы отбрасываются
func getEnvList(key, sep string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// getEnvWarehouses разбивает список складов по "|"; пустой элемент - склад с пустым кодом
func getEnvWarehouses(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parts := strings.Split(value, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
