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

// ProviderHandler 提供商处理器
type ProviderHandler struct {
	providerService *service.ProviderService
}

// NewProviderHandler 创建提供商处理器
func NewProviderHandler(providerService *service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

// GetProviders 获取启用的提供商列表
// @Summary 获取启用的提供商列表
// @Tags 提供商
// @Produce json
// @Success 200 {object} dto.ProviderListResponse
// @Router /api/providers [get]
func (h *ProviderHandler) GetProviders(c *gin.Context) {
	providers, err := h.providerService.GetActiveProviders()
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.ProviderListResponse{
		Success:   true,
		Providers: providers,
		Total:     int64(len(providers)),
	})
}

// GetAllProviders 获取所有提供商(管理员)
// @Summary 获取所有提供商
// @Tags 提供商
// @Produce json
// @Router /api/admin/providers [get]
func (h *ProviderHandler) GetAllProviders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.providerService.GetAllProviders(page, perPage)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, result.Items, result.Total, result.Page, result.PerPage)
}

// GetPreferredProvider 获取优先级最高的启用提供商
// @Summary 获取优先级最高的启用提供商
// @Tags 提供商
// @Produce json
// @Router /api/admin/providers/preferred [get]
func (h *ProviderHandler) GetPreferredProvider(c *gin.Context) {
	provider, err := h.providerService.GetHighestPriority()
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Provider not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "provider": provider})
}

// CreateProvider 创建提供商
// @Summary 创建提供商
// @Tags 提供商
// @Accept json
// @Produce json
// @Router /api/admin/providers [post]
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	provider, err := h.providerService.CreateProvider(&req)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "provider": provider})
}

// UpdateProvider 更新提供商
// @Summary 更新提供商
// @Tags 提供商
// @Accept json
// @Produce json
// @Router /api/admin/providers/{id} [put]
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No provider UID specified")
		return
	}

	var req dto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.providerService.UpdateProvider(id, &req); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Provider not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// DeleteProvider 删除提供商
// @Summary 删除提供商
// @Tags 提供商
// @Produce json
// @Router /api/admin/providers/{id} [delete]
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No provider UID specified")
		return
	}

	if err := h.providerService.DeleteProvider(id); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// ToggleProvider 切换提供商启用状态
// @Summary 切换提供商启用状态
// @Tags 提供商
// @Accept x-www-form-urlencoded
// @Produce json
// @Param uid formData int true "提供商UID"
// @Success 200 {object} dto.ToggleResponse
// @Router /api/admin/providers/toggle [post]
func (h *ProviderHandler) ToggleProvider(c *gin.Context) {
	uid, err := utils.ParseUID(c.PostForm("uid"))
	if err != nil {
		utils.BadRequest(c, "No provider UID specified")
		return
	}

	isActive, err := h.providerService.ToggleProvider(uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Provider not found")
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
