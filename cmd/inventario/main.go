package main

import (
	"flag"
	"fmt"
	"os"

	"inventario/internal/config"
	"inventario/internal/logging"
	"inventario/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	input := flag.String("input", "", "каталог входных файлов (перекрывает INPUT_DIR)")
	output := flag.String("output", "", "каталог выходных файлов (перекрывает OUTPUT_DIR)")
	noZero := flag.Bool("no-zero-warehouses", false, "не добавлять нулевые строки для дополнительных складов")
	logLevel := flag.String("log-level", "", "уровень логирования: DEBUG, INFO, WARN, ERROR")
	envFile := flag.String("env", ".env", "файл переменных окружения")
	flag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error de configuración: %v\n", err)
		return 1
	}

	if *input != "" {
		cfg.InputDir = *input
	}
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *noZero {
		cfg.IncludeZeroWarehouses = false
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error de configuración: %v\n", err)
		return 1
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error de registro: %v\n", err)
		return 1
	}
	defer closer.Close()

	pcfg, err := pipeline.ConfigFrom(cfg)
	if err != nil {
		logger.Error("Failed to build pipeline config", "error", err)
		return 1
	}

	result, err := pipeline.New(pcfg, pipeline.NewSlogSink(logger)).Run()
	printSummary(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nEl proceso falló: %v\n", err)
		return 1
	}
	return 0
}

func printSummary(result *pipeline.RunResult) {
	if result == nil {
		return
	}

	fmt.Printf("Proceso %s\n", result.RunID)
	for _, src := range result.Sources {
		fmt.Printf("  %-10s %-40s filas=%d descartadas=%d inválidas=%d\n",
			src.Origin, src.File, src.Rows, src.Dropped, src.Malformed)
	}
	fmt.Printf("Filas consolidadas: %d\n", result.ConsolidatedRows)

	if s := result.Summary; s != nil {
		fmt.Printf("Referencias: %d  con diferencia: %d  sistema mayor: %d  conteo mayor: %d  diferencia neta: %g\n",
			s.Total, s.NonZero, s.SystemOverstates, s.ManualOverstates, s.SumDifference)
	}
	if result.ExportRows > 0 {
		fmt.Printf("Filas de importación: %d\n", result.ExportRows)
	}

	for _, path := range []string{result.Artifacts.Consolidated, result.Artifacts.Analysis, result.Artifacts.PhysicalCount} {
		if path != "" {
			fmt.Printf("  -> %s\n", path)
		}
	}
}
