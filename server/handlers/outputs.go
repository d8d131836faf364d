package handlers

import (
	"errors"
	"os"
	"path/filepath"

	"inventario/pipeline"
	apperrors "inventario/server/errors"
	"inventario/server/middleware"

	"github.com/gin-gonic/gin"
)

// Имена артефактов в URL
const (
	ArtifactConsolidated  = "consolidated"
	ArtifactAnalysis      = "analysis"
	ArtifactPhysicalCount = "physical-count"
)

// OutputsHandler отдает выходные файлы последнего прогона
type OutputsHandler struct {
	artifacts pipeline.Artifacts
	runs      *RunHandler
}

// NewOutputsHandler создает обработчик выдачи файлов
func NewOutputsHandler(artifacts pipeline.Artifacts, runs *RunHandler) *OutputsHandler {
	return &OutputsHandler{artifacts: artifacts, runs: runs}
}

func (h *OutputsHandler) path(artifact string) (string, bool) {
	switch artifact {
	case ArtifactConsolidated:
		return h.artifacts.Consolidated, true
	case ArtifactAnalysis:
		return h.artifacts.Analysis, true
	case ArtifactPhysicalCount:
		return h.artifacts.PhysicalCount, true
	}
	return "", false
}

// @Summary Download artifact
// @Tags outputs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param artifact path string true "Имя артефакта" Enums(consolidated, analysis, physical-count)
// @Success 200 {file} file "xlsx-файл"
// @Failure 404 {object} middleware.ErrorResponse "Неизвестный или еще не созданный файл"
// @Failure 409 {object} middleware.ErrorResponse "Прогон выполняется"
// @Router /api/outputs/{artifact} [get]
// HandleDownload GET /api/outputs/:artifact
func (h *OutputsHandler) HandleDownload(c *gin.Context) {
	artifact := c.Param("artifact")
	path, ok := h.path(artifact)
	if !ok {
		middleware.HandleGinError(c, apperrors.NewNotFoundError("Archivo desconocido: "+artifact, nil), nil)
		return
	}

	if h.runs != nil && h.runs.Running() {
		middleware.HandleGinError(c, apperrors.FromRunError(apperrors.ErrRunInProgress), nil)
		return
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			middleware.HandleGinError(c, apperrors.NewNotFoundError("El archivo aún no se ha generado", err), nil)
			return
		}
		middleware.HandleGinError(c, apperrors.NewInternalError("failed to stat artifact", err), nil)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
