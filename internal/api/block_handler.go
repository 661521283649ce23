package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// BlockHandler holds the block service dependency.
type BlockHandler struct {
	blockService service.BlockService
}

// NewBlockHandler creates a new BlockHandler.
func NewBlockHandler(blockService service.BlockService) *BlockHandler {
	return &BlockHandler{blockService: blockService}
}

// --- DTOs ---

// SwapExerciseRequest names the replacement exercise. Left empty, the next
// deterministic alternative from the same pool is chosen.
type SwapExerciseRequest struct {
	NewName string `json:"newName"`
}

// BackupURLResponse carries the presigned snapshot link.
type BackupURLResponse struct {
	URL string `json:"url"`
}

// mapBlockError translates service errors into HTTP statuses.
func mapBlockError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrBlockNotFound),
		errors.Is(err, service.ErrNoCurrentBlock):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMissingMaxes),
		errors.Is(err, service.ErrNoTrainingDays),
		errors.Is(err, service.ErrInvalidBlockID),
		errors.Is(err, service.ErrBadImportFormat),
		errors.Is(err, service.ErrProfileNameMissing):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBackupDisabled):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// --- Handler Methods ---

// GenerateBlock builds a brand-new block for the profile.
func (h *BlockHandler) GenerateBlock(c *gin.Context) {
	block, err := h.blockService.GenerateBlock(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapBlockError(c, err, "Failed to generate block.")
		return
	}
	c.JSON(http.StatusCreated, block)
}

// RegenerateBlock rebuilds the block from the stored seed so the same
// exercise selections reappear under the current configuration.
func (h *BlockHandler) RegenerateBlock(c *gin.Context) {
	block, err := h.blockService.RegenerateBlock(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapBlockError(c, err, "Failed to regenerate block.")
		return
	}
	c.JSON(http.StatusCreated, block)
}

func (h *BlockHandler) GetCurrentBlock(c *gin.Context) {
	block, err := h.blockService.CurrentBlock(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapBlockError(c, err, "Failed to retrieve current block.")
		return
	}
	c.JSON(http.StatusOK, block)
}

func (h *BlockHandler) GetBlockHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			abortWithError(c, http.StatusBadRequest, "Invalid limit parameter.")
			return
		}
		limit = n
	}
	blocks, err := h.blockService.BlockHistory(c.Request.Context(), c.Param("name"), limit)
	if err != nil {
		mapBlockError(c, err, "Failed to list blocks.")
		return
	}
	if blocks == nil {
		blocks = []domain.Block{}
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *BlockHandler) GetBlockByID(c *gin.Context) {
	block, err := h.blockService.BlockByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBlockError(c, err, "Failed to retrieve block.")
		return
	}
	c.JSON(http.StatusOK, block)
}

// GetSwapOptions lists valid replacements for one exercise slot.
func (h *BlockHandler) GetSwapOptions(c *gin.Context) {
	week, ok := intParam(c, "week")
	if !ok {
		return
	}
	day, ok := intParam(c, "day")
	if !ok {
		return
	}
	ex, ok := intParam(c, "ex")
	if !ok {
		return
	}

	options, err := h.blockService.SwapOptions(c.Request.Context(), c.Param("id"), week, day, ex)
	if err != nil {
		mapBlockError(c, err, "Failed to list swap options.")
		return
	}
	if options == nil {
		options = []string{}
	}
	c.JSON(http.StatusOK, options)
}

// SwapExercise replaces one exercise slot and clears its logged sets.
func (h *BlockHandler) SwapExercise(c *gin.Context) {
	week, ok := intParam(c, "week")
	if !ok {
		return
	}
	day, ok := intParam(c, "day")
	if !ok {
		return
	}
	ex, ok := intParam(c, "ex")
	if !ok {
		return
	}

	var req SwapExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	block, err := h.blockService.SwapExercise(c.Request.Context(), c.Param("id"), week, day, ex, req.NewName)
	if err != nil {
		mapBlockError(c, err, "Failed to swap exercise.")
		return
	}
	c.JSON(http.StatusOK, block)
}

// ExportBlock streams the block as CSV.
func (h *BlockHandler) ExportBlock(c *gin.Context) {
	data, err := h.blockService.ExportCSV(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBlockError(c, err, "Failed to export block.")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="block.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ImportBlock installs a previously exported CSV as the current block.
func (h *BlockHandler) ImportBlock(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read request body.")
		return
	}
	block, err := h.blockService.ImportCSV(c.Request.Context(), c.Param("name"), data)
	if err != nil {
		mapBlockError(c, err, "Failed to import block.")
		return
	}
	c.JSON(http.StatusCreated, block)
}

// BackupURL snapshots the block to object storage and returns a presigned
// download link.
func (h *BlockHandler) BackupURL(c *gin.Context) {
	url, err := h.blockService.BackupDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBlockError(c, err, "Failed to create backup.")
		return
	}
	c.JSON(http.StatusOK, BackupURLResponse{URL: url})
}
