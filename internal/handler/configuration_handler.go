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

// ConfigurationHandler 配置处理器
type ConfigurationHandler struct {
	configurationService *service.ConfigurationService
}

// NewConfigurationHandler 创建配置处理器
func NewConfigurationHandler(configurationService *service.ConfigurationService) *ConfigurationHandler {
	return &ConfigurationHandler{configurationService: configurationService}
}

// GetAllConfigurations 获取所有配置(管理员)
// @Summary 获取所有配置
// @Tags 配置
// @Produce json
// @Router /api/admin/configurations [get]
func (h *ConfigurationHandler) GetAllConfigurations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.configurationService.GetAllConfigurations(page, perPage)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, result.Items, result.Total, result.Page, result.PerPage)
}

// GetDefaultConfiguration 获取默认配置
// @Summary 获取默认配置
// @Tags 配置
// @Produce json
// @Router /api/admin/configurations/default [get]
func (h *ConfigurationHandler) GetDefaultConfiguration(c *gin.Context) {
	configuration, err := h.configurationService.GetDefaultConfiguration()
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Configuration not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "configuration": configuration})
}

// CreateConfiguration 创建配置
// @Summary 创建配置
// @Tags 配置
// @Accept json
// @Produce json
// @Router /api/admin/configurations [post]
func (h *ConfigurationHandler) CreateConfiguration(c *gin.Context) {
	var req dto.CreateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	configuration, err := h.configurationService.CreateConfiguration(&req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Model not found")
			return
		}
		if errors.Is(err, utils.ErrValidation) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "configuration": configuration})
}

// UpdateConfiguration 更新配置
// @Summary 更新配置
// @Tags 配置
// @Accept json
// @Produce json
// @Router /api/admin/configurations/{id} [put]
func (h *ConfigurationHandler) UpdateConfiguration(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No configuration UID specified")
		return
	}

	var req dto.UpdateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.configurationService.UpdateConfiguration(id, &req); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Configuration not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// DeleteConfiguration 删除配置
// @Summary 删除配置
// @Tags 配置
// @Produce json
// @Router /api/admin/configurations/{id} [delete]
func (h *ConfigurationHandler) DeleteConfiguration(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No configuration UID specified")
		return
	}

	if err := h.configurationService.DeleteConfiguration(id); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// ToggleConfiguration 切换配置启用状态
// @Summary 切换配置启用状态
// @Tags 配置
// @Accept x-www-form-urlencoded
// @Produce json
// @Param uid formData int true "配置UID"
// @Success 200 {object} dto.ToggleResponse
// @Router /api/admin/configurations/toggle [post]
func (h *ConfigurationHandler) ToggleConfiguration(c *gin.Context) {
	uid, err := utils.ParseUID(c.PostForm("uid"))
	if err != nil {
		utils.BadRequest(c, "No configuration UID specified")
		return
	}

	isActive, err := h.configurationService.ToggleConfiguration(uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Configuration not found")
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

// SetDefaultConfiguration 设置默认配置
// @Summary 设置默认配置
// @Tags 配置
// @Accept x-www-form-urlencoded
// @Produce json
// @Param uid formData int true "配置UID"
// @Success 200 {object} dto.SuccessOnly
// @Router /api/admin/configurations/default [post]
func (h *ConfigurationHandler) SetDefaultConfiguration(c *gin.Context) {
	uid, err := utils.ParseUID(c.PostForm("uid"))
	if err != nil {
		utils.BadRequest(c, "No configuration UID specified")
		return
	}

	if err := h.configurationService.SetDefaultConfiguration(uid); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Configuration not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}
