package main

import (
	"fmt"
	"os"
	"strings"

	"inventario/internal/config"
	"inventario/pipeline"
)

func main() {
	fmt.Println("=== Проверка конфигурации ===")
	fmt.Println("")

	// LoadConfig уже выполняет валидацию
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Конфигурация успешно загружена")
	fmt.Println("")

	fmt.Println("Каталоги и файлы:")
	fmt.Printf("  Входные файлы: %s\n", cfg.InputDir)
	fmt.Printf("  Выходные файлы: %s\n", cfg.OutputDir)
	fmt.Printf("  Консолидация: %s\n", cfg.ConsolidatedFile)
	fmt.Printf("  Анализ: %s\n", cfg.AnalysisFile)
	fmt.Printf("  Импорт пересчета: %s\n", cfg.PhysicalCountFile)
	fmt.Println("")

	fmt.Println("Источники:")
	fmt.Printf("  Марки: %s\n", strings.Join(cfg.Brands, ", "))
	fmt.Printf("  Маркеры выгрузки: %s\n", strings.Join(cfg.SystemFileMarkers, ", "))
	if cfg.AliasesFile != "" {
		fmt.Printf("  Файл алиасов: %s\n", cfg.AliasesFile)
	} else {
		fmt.Printf("  Файл алиасов: [не задан]\n")
	}
	fmt.Println("")

	fmt.Println("Импорт пересчета:")
	fmt.Printf("  Основной склад: %s\n", cfg.PrimaryWarehouse)
	zero := cfg.ActiveZeroWarehouses()
	fmt.Printf("  Нулевые склады: %d %q\n", len(zero), zero)
	fmt.Println("")

	fmt.Println("Сервер и логирование:")
	fmt.Printf("  Порт: %s\n", cfg.Port)
	fmt.Printf("  Лимит прогонов в минуту: %d\n", cfg.RunRateLimitPerMin)
	fmt.Printf("  Уровень логов: %s (%s)\n", cfg.LogLevel, cfg.LogFormat)
	fmt.Println("")

	// Алиасы проверяются отдельно: файл может ссылаться на неизвестные поля
	if _, err := pipeline.ConfigFrom(cfg); err != nil {
		fmt.Printf("⚠️  Ошибка в файле алиасов: %v\n", err)
		os.Exit(1)
	}

	if _, err := os.Stat(cfg.InputDir); err != nil {
		fmt.Printf("⚠️  Каталог входных файлов недоступен: %v\n", err)
	}

	fmt.Println("=== Проверка завершена ===")
}
