package handlers

import (
	"net/http"
	"sync"

	"inventario/pipeline"
	apperrors "inventario/server/errors"
	"inventario/server/middleware"

	"github.com/gin-gonic/gin"
)

// Runner выполняет один прогон сверки
type Runner interface {
	Run() (*pipeline.RunResult, error)
}

// RunnerFactory создает прогон, который пишет события в sink
type RunnerFactory func(sink pipeline.Sink) Runner

// RunRecord итог прогона вместе с журналом его событий
type RunRecord struct {
	*pipeline.RunResult
	Events []pipeline.Event `json:"events"`
}

// RunHandler запускает прогоны по HTTP; одновременно выполняется не больше одного
type RunHandler struct {
	mu      sync.Mutex
	running bool
	last    *RunRecord

	factory RunnerFactory
	sink    pipeline.Sink
}

// NewRunHandler создает обработчик; sink получает события всех прогонов
func NewRunHandler(factory RunnerFactory, sink pipeline.Sink) *RunHandler {
	return &RunHandler{factory: factory, sink: sink}
}

// Running сообщает, что прогон выполняется
func (h *RunHandler) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// Last последний завершенный прогон или nil
func (h *RunHandler) Last() *RunRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

func (h *RunHandler) begin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return false
	}
	h.running = true
	return true
}

func (h *RunHandler) finish(record *RunRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.running = false
	if record != nil {
		h.last = record
	}
}

func (h *RunHandler) execute() (record *RunRecord, err error) {
	defer func() { h.finish(record) }()

	memory := pipeline.NewMemorySink()
	sinks := pipeline.MultiSink{memory}
	if h.sink != nil {
		sinks = append(sinks, h.sink)
	}

	result, err := h.factory(sinks).Run()
	record = &RunRecord{RunResult: result, Events: memory.Events()}
	return record, err
}

// @Summary Start reconciliation run
// @Description Выполняет консолидацию, анализ и файл импорта; одновременно выполняется один прогон
// @Tags runs
// @Produce json
// @Success 200 {object} RunRecord "Итог прогона"
// @Failure 409 {object} middleware.ErrorResponse "Прогон уже выполняется"
// @Failure 422 {object} middleware.ErrorResponse "Ошибка входных файлов"
// @Failure 429 {object} middleware.ErrorResponse "Превышен лимит запусков"
// @Failure 500 {object} middleware.ErrorResponse "Ошибка записи результатов"
// @Router /api/runs [post]
// HandleStartRun POST /api/runs: выполняет прогон и возвращает его итог.
// Пока идет прогон, повторный запрос получает 409.
func (h *RunHandler) HandleStartRun(c *gin.Context) {
	if !h.begin() {
		middleware.HandleGinError(c, apperrors.FromRunError(apperrors.ErrRunInProgress), nil)
		return
	}

	record, err := h.execute()
	if err != nil {
		middleware.HandleGinError(c, apperrors.FromRunError(err), record)
		return
	}

	c.JSON(http.StatusOK, record)
}

// @Summary Last run
// @Tags runs
// @Produce json
// @Success 200 {object} RunRecord "Последний прогон"
// @Failure 404 {object} middleware.ErrorResponse "Прогонов еще не было"
// @Router /api/runs/last [get]
// HandleLastRun GET /api/runs/last
func (h *RunHandler) HandleLastRun(c *gin.Context) {
	last := h.Last()
	if last == nil {
		middleware.HandleGinError(c, apperrors.NewNotFoundError("Aún no se ha ejecutado ningún proceso", nil), nil)
		return
	}
	c.JSON(http.StatusOK, last)
}
