package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietnet-search/app/requests"
	"github.com/vietnet-search/app/responses"
	"github.com/vietnet-search/app/services"
)

// SearchController controller xử lý các request tra cứu lexicon
type SearchController struct {
	lexiconService *services.LexiconService
	cacheService   services.ICacheService
	lexiconVersion string
	logger         *zap.Logger
}

// NewSearchController tạo mới SearchController
func NewSearchController(lexiconService *services.LexiconService, cacheService services.ICacheService, lexiconVersion string, logger *zap.Logger) *SearchController {
	return &SearchController{
		lexiconService: lexiconService,
		cacheService:   cacheService,
		lexiconVersion: lexiconVersion,
		logger:         logger,
	}
}

// Search tra cứu một query
func (sc *SearchController) Search(c *gin.Context) {
	var req requests.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	startTime := time.Now()
	threshold := req.Options.Threshold
	if threshold == 0 {
		threshold = sc.lexiconService.Threshold()
	}

	// Kiểm tra cache trước
	fingerprint := services.CacheFingerprint(req.Query, sc.lexiconVersion)
	if req.Options.UseCache && sc.cacheService != nil {
		if cached, found, err := sc.cacheService.Get(c.Request.Context(), fingerprint); err == nil && found {
			c.JSON(http.StatusOK, responses.SearchResponse{
				Result:           *cached,
				ThresholdUsed:    threshold,
				LexiconVersion:   sc.lexiconVersion,
				ProcessingTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:         true,
			})
			return
		}
	}

	result, err := sc.lexiconService.Search(c.Request.Context(), req.Query, threshold)
	if err != nil {
		sc.logger.Error("Lỗi tra cứu", zap.String("query", req.Query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SEARCH_ERROR",
			Message: "Lỗi tra cứu: " + err.Error(),
		})
		return
	}

	if req.Options.UseCache && sc.cacheService != nil {
		if err := sc.cacheService.Set(c.Request.Context(), fingerprint, result); err != nil {
			sc.logger.Warn("Không thể lưu cache", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, responses.SearchResponse{
		Result:           *result,
		ThresholdUsed:    threshold,
		LexiconVersion:   sc.lexiconVersion,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         false,
	})
}

// GetSynset lấy thông tin tiếng Việt của một synset theo ID
func (sc *SearchController) GetSynset(c *gin.Context) {
	synsetID := c.Param("synsetID")

	detail, err := sc.lexiconService.SynsetDetail(c.Request.Context(), synsetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "LOOKUP_ERROR",
			Message: "Lỗi đọc synset: " + err.Error(),
		})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "SYNSET_NOT_FOUND",
			Message: "Synset_ID " + synsetID + " không tồn tại",
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// HealthCheck kiểm tra service còn sống
func (sc *SearchController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:  "ok",
		Service: "VietNet Search",
		Version: sc.lexiconVersion,
	})
}
