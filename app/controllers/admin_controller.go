package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietnet-search/app/requests"
	"github.com/vietnet-search/app/responses"
	"github.com/vietnet-search/app/services"
	"github.com/vietnet-search/helpers/utils"
	"github.com/vietnet-search/internal/index"
)

// AdminController controller xử lý ingest và các thao tác quản trị
type AdminController struct {
	adminService *services.AdminService
	logger       *zap.Logger
}

// NewAdminController tạo mới AdminController
func NewAdminController(adminService *services.AdminService, logger *zap.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// Ingest rebuild toàn bộ lexicon từ records nguồn
func (ac *AdminController) Ingest(c *gin.Context) {
	var req requests.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	runID := utils.NewRunID()
	ac.logger.Info("Bắt đầu ingest",
		zap.String("run_id", runID),
		zap.Int("records", len(req.Records)))

	result, err := ac.adminService.Ingest(c.Request.Context(), req.Records)
	if err != nil {
		var ingestErr *index.IngestionError
		if errors.As(err, &ingestErr) {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Error:   "INVALID_RECORD",
				Message: ingestErr.Error(),
			})
			return
		}
		ac.logger.Error("Lỗi ingest", zap.String("run_id", runID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "INGEST_ERROR",
			Message: "Lỗi ingest: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.IngestResponse{
		RunID:            runID,
		RecordsIn:        result.RecordsIn,
		Counts:           result.Counts,
		ProcessingTimeMs: result.ProcessingTimeMs,
		Message:          "Đã rebuild lexicon thành công",
	})
}

// SeedMeilisearch đẩy bảng exact vào Meilisearch
func (ac *AdminController) SeedMeilisearch(c *gin.Context) {
	seeded, err := ac.adminService.SeedMeilisearch(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SEED_ERROR",
			Message: "Lỗi seed Meilisearch: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.SeedMeiliResponse{
		DocumentsSeeded: seeded,
		Message:         "Đã seed lexicon vào Meilisearch",
	})
}

// MeiliSearch tra từ qua Meilisearch (thử nghiệm)
func (ac *AdminController) MeiliSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Thiếu tham số q",
		})
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	hits, err := ac.adminService.MeiliSearchWord(query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "MEILI_ERROR",
			Message: "Lỗi tìm kiếm Meilisearch: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "hits": hits})
}

// InvalidateCache xóa toàn bộ cache kết quả
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	if err := ac.adminService.InvalidateCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: "Lỗi invalidate cache: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa toàn bộ cache"})
}

// GetStats thống kê hệ thống
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.adminService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STATS_ERROR",
			Message: "Lỗi lấy thống kê: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, stats)
}
