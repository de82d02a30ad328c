package service

import (
	"llm-console/internal/dto"
	"llm-console/internal/models"
	"llm-console/internal/repository"
	"llm-console/internal/utils"
)

// ConfigurationService 配置服务
type ConfigurationService struct {
	configurationRepo *repository.ConfigurationRepository
	modelRepo         *repository.ModelRepository
}

// NewConfigurationService 创建配置服务
func NewConfigurationService(configurationRepo *repository.ConfigurationRepository, modelRepo *repository.ModelRepository) *ConfigurationService {
	return &ConfigurationService{
		configurationRepo: configurationRepo,
		modelRepo:         modelRepo,
	}
}

// toConfigurationResponse 转换为响应结构
func toConfigurationResponse(configuration *models.Configuration) dto.ConfigurationResponse {
	return dto.ConfigurationResponse{
		ID:         configuration.ID,
		Identifier: configuration.Identifier,
		Name:       configuration.Name,
		ModelUID:   configuration.ModelID,
		Options:    configuration.Options,
		IsActive:   configuration.IsActive,
		IsDefault:  configuration.IsDefault,
		CreatedAt:  configuration.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  configuration.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GetAllConfigurations 获取所有配置(管理员)
func (s *ConfigurationService) GetAllConfigurations(page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	items, total, err := s.configurationRepo.List(offset, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConfigurationResponse, len(items))
	for i := range items {
		responses[i] = toConfigurationResponse(&items[i])
	}

	return &dto.PaginatedResponse{
		Items:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// GetConfigurationByID 获取配置详情
func (s *ConfigurationService) GetConfigurationByID(id uint) (*models.Configuration, error) {
	return s.configurationRepo.GetByID(id)
}

// GetDefaultConfiguration 获取默认配置
func (s *ConfigurationService) GetDefaultConfiguration() (*models.Configuration, error) {
	return s.configurationRepo.GetDefault()
}

// CreateConfiguration 创建配置
func (s *ConfigurationService) CreateConfiguration(req *dto.CreateConfigurationRequest) (*models.Configuration, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	// 绑定模型时模型必须存在,不绑定模型是合法的
	if req.ModelUID != nil {
		if _, err := s.modelRepo.GetByID(*req.ModelUID); err != nil {
			return nil, err
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	configuration := &models.Configuration{
		Identifier: req.Identifier,
		Name:       req.Name,
		ModelID:    req.ModelUID,
		Options:    req.Options,
		IsActive:   isActive,
	}

	if err := s.configurationRepo.Create(configuration); err != nil {
		return nil, err
	}

	return configuration, nil
}

// UpdateConfiguration 更新配置
func (s *ConfigurationService) UpdateConfiguration(id uint, req *dto.UpdateConfigurationRequest) error {
	configuration, err := s.configurationRepo.GetByID(id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		configuration.Name = *req.Name
	}
	if req.ModelUID != nil {
		if _, err := s.modelRepo.GetByID(*req.ModelUID); err != nil {
			return err
		}
		configuration.ModelID = req.ModelUID
	}
	if req.Options != nil {
		configuration.Options = req.Options
	}
	if req.IsActive != nil {
		configuration.IsActive = *req.IsActive
		if !configuration.IsActive && configuration.IsDefault {
			configuration.IsDefault = false
		}
	}

	return s.configurationRepo.Update(configuration)
}

// DeleteConfiguration 删除配置
func (s *ConfigurationService) DeleteConfiguration(id uint) error {
	return s.configurationRepo.Delete(id)
}

// ToggleConfiguration 切换配置启用状态
func (s *ConfigurationService) ToggleConfiguration(id uint) (bool, error) {
	return s.configurationRepo.ToggleActive(id)
}

// SetDefaultConfiguration 设置默认配置
func (s *ConfigurationService) SetDefaultConfiguration(id uint) error {
	return s.configurationRepo.SetDefault(id)
}
