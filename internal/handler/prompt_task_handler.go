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

// PromptTaskHandler 任务处理器
type PromptTaskHandler struct {
	taskService *service.PromptTaskService
}

// NewPromptTaskHandler 创建任务处理器
func NewPromptTaskHandler(taskService *service.PromptTaskService) *PromptTaskHandler {
	return &PromptTaskHandler{taskService: taskService}
}

// GetTasks 获取启用的任务列表,可选按分类过滤
// @Summary 获取启用的任务列表
// @Tags 任务
// @Produce json
// @Param category query string false "任务分类"
// @Success 200 {object} dto.PromptTaskListResponse
// @Router /api/tasks [get]
func (h *PromptTaskHandler) GetTasks(c *gin.Context) {
	var tasks []dto.PromptTaskResponse
	var err error

	if category := c.Query("category"); category != "" {
		tasks, err = h.taskService.GetActiveTasksByCategory(category)
	} else {
		tasks, err = h.taskService.GetActiveTasks()
	}
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.PromptTaskListResponse{
		Success: true,
		Tasks:   tasks,
		Total:   int64(len(tasks)),
	})
}

// GetAllTasks 获取所有任务(管理员)
// @Summary 获取所有任务
// @Tags 任务
// @Produce json
// @Router /api/admin/tasks [get]
func (h *PromptTaskHandler) GetAllTasks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.taskService.GetAllTasks(page, perPage)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, result.Items, result.Total, result.Page, result.PerPage)
}

// CreateTask 创建任务
// @Summary 创建任务
// @Tags 任务
// @Accept json
// @Produce json
// @Router /api/admin/tasks [post]
func (h *PromptTaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreatePromptTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.CreateTask(&req)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "task": task})
}

// UpdateTask 更新任务
// @Summary 更新任务
// @Tags 任务
// @Accept json
// @Produce json
// @Router /api/admin/tasks/{id} [put]
func (h *PromptTaskHandler) UpdateTask(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No task UID specified")
		return
	}

	var req dto.UpdatePromptTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.taskService.UpdateTask(id, &req); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// DeleteTask 删除任务
// @Summary 删除任务
// @Tags 任务
// @Produce json
// @Router /api/admin/tasks/{id} [delete]
func (h *PromptTaskHandler) DeleteTask(c *gin.Context) {
	id, err := utils.ParseUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "No task UID specified")
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.SuccessOnly{Success: true})
}

// ToggleTask 切换任务启用状态
// @Summary 切换任务启用状态
// @Tags 任务
// @Accept x-www-form-urlencoded
// @Produce json
// @Param uid formData int true "任务UID"
// @Success 200 {object} dto.ToggleResponse
// @Router /api/admin/tasks/toggle [post]
func (h *PromptTaskHandler) ToggleTask(c *gin.Context) {
	uid, err := utils.ParseUID(c.PostForm("uid"))
	if err != nil {
		utils.BadRequest(c, "No task UID specified")
		return
	}

	isActive, err := h.taskService.ToggleTask(uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Task not found")
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
