package handler

import (
	"errors"
	"strconv"

	"llm-console/internal/dto"
	"llm-console/internal/service"
	"llm-console/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModelHandler 模型处理器
type ModelHandler struct {
	modelService *service.ModelService
}

// NewModelHandler 创建模型处理器
func NewModelHandler(modelService *service.ModelService) *ModelHandler {
	return &ModelHandler{modelService: modelService}
}

// GetAllModels 获取所有模型(管理员)
// @Summary 获取所有模型
// @Tags 模型
// @Produce json
// @Router /api/admin/models [get]
func (h *ModelHandler) GetAllModels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.modelService.GetAllModels(page, perPage)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, result.Items, result.Total, result.Page, result.PerPage)
}

// GetModelsByProvider 按提供商查询启用的模型
// @Summary 按提供商查询启用的模型
// @Tags 模型
// @Produce json
// @Param providerUid query int true "提供商UID"
// @Success 200 {object} dto.ModelsByProviderResponse
// @Router /api/admin/models/by-provider [get]
func (h *ModelHandler) GetModelsByProvider(c *gin.Context) {
	providerUID, err := utils.ParseUID(c.Query("providerUid"))
	if err != nil {
		utils.BadRequest(c, "No provider UID specified")
		return
	}

	summaries, err := h.modelService.GetModelsByProvider(providerUID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.ModelsByProviderResponse{
		Success: true,
		Models:  summaries,
	})
}

// LookupModel 根据提供商侧模型标识查找模型
// @Summary 根据模型标识查找模型
// @Tags 模型
// @Produce json
// @Param modelId query string true "提供商侧模型标识"
// @Success 200 {object} dto.ModelLookupResponse
// @Router /api/admin/models/lookup [get]
func (h *ModelHandler) LookupModel(c *gin.Context) {
	modelID := c.Query("modelId")
	if modelID == "" {
		utils.BadRequest(c, "No model ID specified")
		return
	}

	summary, err := h.modelService.GetModelByModelID(modelID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Model not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.ModelLookupResponse{
		Success: true,
		Model:   summary,
	})
}

// CreateModel 创建模型
// @Summary 创建模型
// @Tags 模型
// @Accept json
// @Produce json
// @Router /api/admin/models [post]
func (h *ModelHandler) CreateModel(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	model, err := h.modelService.CreateModel(&req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Provider not found")
			return
		}
		if errors.Is(err, utils.ErrValidation) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "model": model})
}

// UpdateModel 更新模型
// @Summary 更新模型
// @Tags 模型
// @Accept json
// @Produce json
// @Router /api/admin/models/{id} [put]
func (h *ModelHandler) UpdateModel(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No model UID specified")
		return
	}

	var req dto.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.modelService.UpdateModel(id, &req); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Model not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// DeleteModel 删除模型
// @Summary 删除模型
// @Tags 模型
// @Produce json
// @Router /api/admin/models/{id} [delete]
func (h *ModelHandler) DeleteModel(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No model UID specified")
		return
	}

	if err := h.modelService.DeleteModel(id); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// ToggleModel 切换模型启用状态
// @Summary 切换模型启用状态
// @Tags 模型
// @Accept x-www-form-urlencoded
// @Produce json
// @Param uid formData int true "模型UID"
// @Success 200 {object} dto.ToggleResponse
// @Router /api/admin/models/toggle [post]
func (h *ModelHandler) ToggleModel(c *gin.Context) {
	uid, err := utils.ParseUID(c.PostForm("uid"))
	if err != nil {
		utils.BadRequest(c, "No model UID specified")
		return
	}

	isActive, err := h.modelService.ToggleModel(uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Model not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.ToggleResponse{
		Success:  true,
		IsActive: isActive,
	})
}

// SetDefaultModel 设置默认模型
// @Summary 设置默认模型
// @Tags 模型
// @Accept x-www-form-urlencoded
// @Produce json
// @Param uid formData int true "模型UID"
// @Success 200 {object} dto.SuccessOnly
// @Router /api/admin/models/default [post]
func (h *ModelHandler) SetDefaultModel(c *gin.Context) {
	uid, err := utils.ParseUID(c.PostForm("uid"))
	if err != nil {
		utils.BadRequest(c, "No model UID specified")
		return
	}

	if err := h.modelService.SetDefaultModel(uid); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Model not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}
