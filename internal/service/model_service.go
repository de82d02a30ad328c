package service

import (
	"llm-console/internal/dto"
	"llm-console/internal/models"
	"llm-console/internal/repository"
	"llm-console/internal/utils"
)

// ModelService 模型服务
type ModelService struct {
	modelRepo    *repository.ModelRepository
	providerRepo *repository.ProviderRepository
}

// NewModelService 创建模型服务
func NewModelService(modelRepo *repository.ModelRepository, providerRepo *repository.ProviderRepository) *ModelService {
	return &ModelService{
		modelRepo:    modelRepo,
		providerRepo: providerRepo,
	}
}

// toModelResponse 转换为响应结构
func toModelResponse(model *models.LLMModel) dto.ModelResponse {
	return dto.ModelResponse{
		ID:              model.ID,
		Identifier:      model.Identifier,
		Name:            model.Name,
		ModelID:         model.ModelID,
		ProviderUID:     model.ProviderID,
		ContextLength:   model.ContextLength,
		MaxOutputTokens: model.MaxOutputTokens,
		Capabilities:    model.Capabilities,
		IsActive:        model.IsActive,
		IsDefault:       model.IsDefault,
		CreatedAt:       model.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       model.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toModelSummary 转换为摘要结构
func toModelSummary(model *models.LLMModel) dto.ModelSummary {
	capabilities := model.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}

	return dto.ModelSummary{
		UID:             model.ID,
		Name:            model.Name,
		ModelID:         model.ModelID,
		ContextLength:   model.ContextLength,
		MaxOutputTokens: model.MaxOutputTokens,
		Capabilities:    capabilities,
		IsDefault:       model.IsDefault,
	}
}

// GetAllModels 获取所有模型(管理员)
func (s *ModelService) GetAllModels(page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	items, total, err := s.modelRepo.List(offset, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ModelResponse, len(items))
	for i := range items {
		responses[i] = toModelResponse(&items[i])
	}

	return &dto.PaginatedResponse{
		Items:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// GetModelByID 获取模型详情
func (s *ModelService) GetModelByID(id uint) (*models.LLMModel, error) {
	return s.modelRepo.GetByID(id)
}

// GetModelByModelID 根据提供商侧模型标识查找模型
func (s *ModelService) GetModelByModelID(modelID string) (dto.ModelSummary, error) {
	model, err := s.modelRepo.GetByModelID(modelID)
	if err != nil {
		return dto.ModelSummary{}, err
	}
	return toModelSummary(model), nil
}

// GetModelsByProvider 获取指定提供商下启用的模型摘要
func (s *ModelService) GetModelsByProvider(providerID uint) ([]dto.ModelSummary, error) {
	items, err := s.modelRepo.GetActiveByProvider(providerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ModelSummary, len(items))
	for i := range items {
		summaries[i] = toModelSummary(&items[i])
	}

	return summaries, nil
}

// CreateModel 创建模型
func (s *ModelService) CreateModel(req *dto.CreateModelRequest) (*models.LLMModel, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	// 提供商必须存在
	if _, err := s.providerRepo.GetByID(req.ProviderUID); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	model := &models.LLMModel{
		Identifier:      req.Identifier,
		Name:            req.Name,
		ModelID:         req.ModelID,
		ProviderID:      req.ProviderUID,
		ContextLength:   req.ContextLength,
		MaxOutputTokens: req.MaxOutputTokens,
		Capabilities:    req.Capabilities,
		IsActive:        isActive,
	}

	if err := s.modelRepo.Create(model); err != nil {
		return nil, err
	}

	return model, nil
}

// UpdateModel 更新模型
func (s *ModelService) UpdateModel(id uint, req *dto.UpdateModelRequest) error {
	model, err := s.modelRepo.GetByID(id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.ModelID != nil {
		model.ModelID = *req.ModelID
	}
	if req.ProviderUID != nil {
		if _, err := s.providerRepo.GetByID(*req.ProviderUID); err != nil {
			return err
		}
		model.ProviderID = *req.ProviderUID
	}
	if req.ContextLength != nil {
		model.ContextLength = *req.ContextLength
	}
	if req.MaxOutputTokens != nil {
		model.MaxOutputTokens = *req.MaxOutputTokens
	}
	if req.Capabilities != nil {
		model.Capabilities = req.Capabilities
	}
	if req.IsActive != nil {
		model.IsActive = *req.IsActive
		// 停用默认模型时清除默认标记
		if !model.IsActive && model.IsDefault {
			model.IsDefault = false
		}
	}

	return s.modelRepo.Update(model)
}

// DeleteModel 删除模型
func (s *ModelService) DeleteModel(id uint) error {
	return s.modelRepo.Delete(id)
}

// ToggleModel 切换模型启用状态
func (s *ModelService) ToggleModel(id uint) (bool, error) {
	return s.modelRepo.ToggleActive(id)
}

// SetDefaultModel 设置默认模型
func (s *ModelService) SetDefaultModel(id uint) error {
	return s.modelRepo.SetDefault(id)
}
