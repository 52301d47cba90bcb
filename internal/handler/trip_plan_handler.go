package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Lakbay-App/internal/domain/model"
	"Lakbay-App/internal/usecase"
)

// TripPlanHandler 旅行プランAPIのハンドラー
type TripPlanHandler struct {
	planUseCase usecase.TripPlanUseCase
}

// NewTripPlanHandler は新しいTripPlanHandlerインスタンスを作成
func NewTripPlanHandler(planUseCase usecase.TripPlanUseCase) *TripPlanHandler {
	return &TripPlanHandler{planUseCase: planUseCase}
}

// PostTripPlan は旅行プランを生成するエンドポイント
// POST /trips/plan
func (h *TripPlanHandler) PostTripPlan(c *gin.Context) {
	var req model.TripPlanRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	result, err := h.planUseCase.PlanTrip(c.Request.Context(), &req)
	if err != nil {
		// 入力不備は400、それ以外は500
		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "バリデーションエラー",
				"field":   validationErr.Field,
				"details": validationErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "旅行プランの生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス（サブシステムの失敗はerrorsフィールドに含まれる）
	c.JSON(http.StatusOK, result)
}

// GetTripPlan は保存済みの旅行プランを取得するエンドポイント
// GET /trips/plan/:id
func (h *TripPlanHandler) GetTripPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "plan_idが指定されていません",
		})
		return
	}

	result, err := h.planUseCase.GetTripPlan(c.Request.Context(), planID)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "旅行プランが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "旅行プランの取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
