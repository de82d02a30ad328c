package service

import (
	"llm-console/internal/dto"
	"llm-console/internal/models"
	"llm-console/internal/repository"
	"llm-console/internal/utils"
)

// ProviderService 提供商服务
type ProviderService struct {
	providerRepo *repository.ProviderRepository
}

// NewProviderService 创建提供商服务
func NewProviderService(providerRepo *repository.ProviderRepository) *ProviderService {
	return &ProviderService{
		providerRepo: providerRepo,
	}
}

// toProviderResponse 转换为响应结构
func toProviderResponse(provider *models.Provider) dto.ProviderResponse {
	return dto.ProviderResponse{
		ID:          provider.ID,
		Identifier:  provider.Identifier,
		Name:        provider.Name,
		AdapterType: provider.AdapterType,
		BaseURL:     provider.BaseURL,
		APIKey:      provider.APIKey,
		Priority:    provider.Priority,
		IsActive:    provider.IsActive,
		CreatedAt:   provider.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   provider.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GetActiveProviders 获取启用的提供商列表
func (s *ProviderService) GetActiveProviders() ([]dto.ProviderResponse, error) {
	providers, err := s.providerRepo.GetActive()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProviderResponse, len(providers))
	for i := range providers {
		responses[i] = toProviderResponse(&providers[i])
	}

	return responses, nil
}

// GetAllProviders 获取所有提供商(管理员)
func (s *ProviderService) GetAllProviders(page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	providers, total, err := s.providerRepo.List(offset, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProviderResponse, len(providers))
	for i := range providers {
		responses[i] = toProviderResponse(&providers[i])
	}

	return &dto.PaginatedResponse{
		Items:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// GetProviderByID 获取提供商详情
func (s *ProviderService) GetProviderByID(id uint) (*models.Provider, error) {
	return s.providerRepo.GetByID(id)
}

// GetHighestPriority 获取优先级最高的启用提供商
func (s *ProviderService) GetHighestPriority() (*models.Provider, error) {
	return s.providerRepo.GetHighestPriority()
}

// CreateProvider 创建提供商
func (s *ProviderService) CreateProvider(req *dto.CreateProviderRequest) (*models.Provider, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	adapterType := req.AdapterType
	if adapterType == "" {
		adapterType = "openai"
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	provider := &models.Provider{
		Identifier:  req.Identifier,
		Name:        req.Name,
		AdapterType: adapterType,
		BaseURL:     req.BaseURL,
		APIKey:      req.APIKey,
		Priority:    req.Priority,
		IsActive:    isActive,
	}

	if err := s.providerRepo.Create(provider); err != nil {
		return nil, err
	}

	return provider, nil
}

// UpdateProvider 更新提供商
func (s *ProviderService) UpdateProvider(id uint, req *dto.UpdateProviderRequest) error {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.AdapterType != nil {
		provider.AdapterType = *req.AdapterType
	}
	if req.BaseURL != nil {
		provider.BaseURL = *req.BaseURL
	}
	if req.APIKey != nil {
		provider.APIKey = *req.APIKey
	}
	if req.Priority != nil {
		provider.Priority = *req.Priority
	}
	if req.IsActive != nil {
		provider.IsActive = *req.IsActive
	}

	return s.providerRepo.Update(provider)
}

// DeleteProvider 删除提供商
func (s *ProviderService) DeleteProvider(id uint) error {
	return s.providerRepo.Delete(id)
}

// ToggleProvider 切换提供商启用状态
func (s *ProviderService) ToggleProvider(id uint) (bool, error) {
	return s.providerRepo.ToggleActive(id)
}
