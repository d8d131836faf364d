package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus статус здоровья компонента
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth здоровье отдельного компонента
type ComponentHealth struct {
	Name      string        `json:"name"`
	Status    HealthStatus  `json:"status"`
	Message   string        `json:"message,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Latency   time.Duration `json:"latency,omitempty"`
}

// HealthCheckResult результат проверки здоровья системы
type HealthCheckResult struct {
	Status     HealthStatus               `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Uptime     time.Duration              `json:"uptime"`
	Version    string                     `json:"version"`
	Components map[string]ComponentHealth `json:"components"`
	Goroutines int                        `json:"goroutines"`
}

// HealthCheckFunc функция проверки здоровья компонента
type HealthCheckFunc func(ctx context.Context) ComponentHealth

// HealthChecker проверяет здоровье системы
type HealthChecker struct {
	mu         sync.RWMutex
	components map[string]HealthCheckFunc
	startTime  time.Time
	version    string
}

// NewHealthChecker создает новый HealthChecker
func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{
		components: make(map[string]HealthCheckFunc),
		startTime:  time.Now(),
		version:    version,
	}
}

// RegisterComponent регистрирует компонент для проверки здоровья
func (hc *HealthChecker) RegisterComponent(name string, checkFunc HealthCheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.components[name] = checkFunc
}

// Check выполняет проверку здоровья всех компонентов
func (hc *HealthChecker) Check(ctx context.Context) HealthCheckResult {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	components := make(map[string]ComponentHealth, len(hc.components))
	overallStatus := HealthStatusHealthy

	for name, checkFunc := range hc.components {
		componentHealth := checkFunc(ctx)
		components[name] = componentHealth
		if componentHealth.Status == HealthStatusUnhealthy {
			overallStatus = HealthStatusUnhealthy
		} else if componentHealth.Status == HealthStatusDegraded && overallStatus == HealthStatusHealthy {
			overallStatus = HealthStatusDegraded
		}
	}

	return HealthCheckResult{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Uptime:     time.Since(hc.startTime),
		Version:    hc.version,
		Components: components,
		Goroutines: runtime.NumGoroutine(),
	}
}

// GinHandler возвращает handler для health check endpoint
func (hc *HealthChecker) GinHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result := hc.Check(ctx)

		// degraded отвечает 200, но с предупреждением
		statusCode := http.StatusOK
		if result.Status == HealthStatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, result)
	}
}

// LogHealthStatus логирует статус здоровья
func (hc *HealthChecker) LogHealthStatus(logger *slog.Logger) {
	result := hc.Check(context.Background())

	logger.Info("Health check",
		"status", result.Status,
		"uptime", result.Uptime,
		"components", len(result.Components),
	)

	names := make([]string, 0, len(result.Components))
	for name := range result.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	// Логируем проблемные компоненты
	for _, name := range names {
		component := result.Components[name]
		if component.Status != HealthStatusHealthy {
			logger.Warn("Component health issue",
				"component", name,
				"status", component.Status,
				"message", component.Message,
			)
		}
	}
}

// InputDirCheck проверяет, что каталог входных файлов существует
func InputDirCheck(dir string) HealthCheckFunc {
	return func(ctx context.Context) ComponentHealth {
		start := time.Now()
		health := ComponentHealth{Name: "input_dir", Status: HealthStatusHealthy, Message: dir}

		info, err := os.Stat(dir)
		switch {
		case err != nil:
			health.Status = HealthStatusUnhealthy
			health.Message = fmt.Sprintf("input directory error: %v", err)
		case !info.IsDir():
			health.Status = HealthStatusUnhealthy
			health.Message = fmt.Sprintf("%s is not a directory", dir)
		}

		health.Timestamp = time.Now()
		health.Latency = time.Since(start)
		return health
	}
}

// OutputDirCheck проверяет, что в каталог выходных файлов можно писать.
// Отсутствующий каталог будет создан прогоном, поэтому это degraded.
func OutputDirCheck(dir string) HealthCheckFunc {
	return func(ctx context.Context) ComponentHealth {
		start := time.Now()
		health := ComponentHealth{Name: "output_dir", Status: HealthStatusHealthy, Message: dir}

		if _, err := os.Stat(dir); err != nil {
			health.Status = HealthStatusDegraded
			health.Message = fmt.Sprintf("output directory will be created: %v", err)
		} else {
			probe, err := os.CreateTemp(dir, ".health-*")
			if err != nil {
				health.Status = HealthStatusUnhealthy
				health.Message = fmt.Sprintf("output directory is not writable: %v", err)
			} else {
				probe.Close()
				os.Remove(filepath.Clean(probe.Name()))
			}
		}

		health.Timestamp = time.Now()
		health.Latency = time.Since(start)
		return health
	}
}
