package handler

import (
	"errors"

	"llm-console/internal/service"
	"llm-console/internal/utils"

	"github.com/gin-gonic/gin"
)

// QuickTestHandler 快速测试处理器
type QuickTestHandler struct {
	quickTestService *service.QuickTestService
}

// NewQuickTestHandler 创建快速测试处理器
func NewQuickTestHandler(quickTestService *service.QuickTestService) *QuickTestHandler {
	return &QuickTestHandler{quickTestService: quickTestService}
}

// RunQuickTest 对指定提供商执行一次快速测试
// @Summary 快速测试提供商连通性
// @Tags 快速测试
// @Accept x-www-form-urlencoded
// @Produce json
// @Param provider formData string true "提供商标识符"
// @Param prompt formData string false "测试提示词,缺省时使用默认提示词"
// @Param modelId formData string false "指定模型标识,缺省时自动解析"
// @Success 200 {object} dto.QuickTestResponse
// @Router /api/admin/quick-test [post]
func (h *QuickTestHandler) RunQuickTest(c *gin.Context) {
	provider := c.PostForm("provider")
	prompt := c.PostForm("prompt")
	modelID := c.PostForm("modelId")

	resp, err := h.quickTestService.Run(c.Request.Context(), provider, prompt, modelID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoProviderSpecified):
			utils.BadRequest(c, "No provider specified")
		case errors.Is(err, service.ErrProviderNotFound):
			utils.NotFound(c, "Provider not found")
		case errors.Is(err, service.ErrNoActiveModel):
			utils.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrConcurrencyLimit):
			utils.ErrorResponse(c, 429, err.Error())
		default:
			// 上游调用失败归一化为错误信封,绝不向外抛未处理异常
			utils.BadGateway(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, resp)
}
