package handler

import (
	"llm-console/internal/dto"
	"llm-console/internal/repository"
	"llm-console/internal/utils"

	"github.com/gin-gonic/gin"
)

// StatsHandler 统计处理器
type StatsHandler struct {
	providerRepo      *repository.ProviderRepository
	modelRepo         *repository.ModelRepository
	configurationRepo *repository.ConfigurationRepository
	taskRepo          *repository.PromptTaskRepository
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(
	providerRepo *repository.ProviderRepository,
	modelRepo *repository.ModelRepository,
	configurationRepo *repository.ConfigurationRepository,
	taskRepo *repository.PromptTaskRepository,
) *StatsHandler {
	return &StatsHandler{
		providerRepo:      providerRepo,
		modelRepo:         modelRepo,
		configurationRepo: configurationRepo,
		taskRepo:          taskRepo,
	}
}

// GetStats 获取各类实体的数量统计
// 空库返回全零而不是错误
// @Summary 获取实体数量统计
// @Tags 统计
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /api/admin/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	resp := dto.StatsResponse{Success: true}

	counters := []struct {
		target *dto.KindCounts
		total  func() (int64, error)
		active func() (int64, error)
	}{
		{&resp.Providers, h.providerRepo.Count, h.providerRepo.CountActive},
		{&resp.Models, h.modelRepo.Count, h.modelRepo.CountActive},
		{&resp.Configurations, h.configurationRepo.Count, h.configurationRepo.CountActive},
		{&resp.Tasks, h.taskRepo.Count, h.taskRepo.CountActive},
	}

	for _, counter := range counters {
		total, err := counter.total()
		if err != nil {
			utils.InternalError(c, err.Error())
			return
		}
		active, err := counter.active()
		if err != nil {
			utils.InternalError(c, err.Error())
			return
		}
		counter.target.Total = total
		counter.target.Active = active
	}

	utils.SuccessResponse(c, resp)
}
