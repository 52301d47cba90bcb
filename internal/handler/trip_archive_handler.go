package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Lakbay-App/internal/application"
)

// TripArchiveHandler 旅行アーカイブに関するHTTPハンドラー
type TripArchiveHandler struct {
	archiveService application.TripArchiveService
}

// NewTripArchiveHandler TripArchiveHandlerの新しいインスタンスを作成
func NewTripArchiveHandler(archiveService application.TripArchiveService) *TripArchiveHandler {
	return &TripArchiveHandler{archiveService: archiveService}
}

// ListArchives GET /trips/archive - アーカイブ一覧を取得
// クエリパラメータ destination で絞り込み、limit で件数指定
func (h *TripArchiveHandler) ListArchives(c *gin.Context) {
	destination := c.Query("destination")

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "limitは正の整数で指定してください",
			})
			return
		}
		limit = parsed
	}

	archives, err := h.archiveService.ListByDestination(c.Request.Context(), destination, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "アーカイブ一覧の取得に失敗しました: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"archives": archives})
}

// GetArchive GET /trips/archive/:id - アーカイブの詳細を取得
func (h *TripArchiveHandler) GetArchive(c *gin.Context) {
	archiveID := c.Param("id")
	if archiveID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "アーカイブIDが指定されていません",
		})
		return
	}

	archive, err := h.archiveService.GetArchive(c.Request.Context(), archiveID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "アーカイブの取得に失敗しました: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, archive)
}
