package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventario/internal/config"
	"inventario/internal/logging"
	"inventario/pipeline"
	"inventario/server"
)

func main() {
	log.Println("Запуск сервера сверки инвентаря...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, os.Stdout)
	if err != nil {
		log.Fatalf("Ошибка настройки логирования: %v", err)
	}
	defer closer.Close()

	pcfg, err := pipeline.ConfigFrom(cfg)
	if err != nil {
		log.Fatalf("Ошибка загрузки алиасов: %v", err)
	}

	srv := server.NewServer(cfg, pcfg, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Обработка сигналов для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received signal, shutting down", "signal", sig.String())
	case err := <-errChan:
		if err != nil {
			logger.Error("Server stopped", "error", err)
			closer.Close()
			os.Exit(1)
		}
		return
	}

	// Даем время текущему прогону завершиться
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}
