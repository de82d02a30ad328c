package repository

import (
	"llm-console/internal/models"

	"gorm.io/gorm"
)

// ProviderRepository 提供商数据访问层
type ProviderRepository struct {
	db *gorm.DB
}

// NewProviderRepository 创建提供商Repository
func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// Create 创建提供商
func (r *ProviderRepository) Create(provider *models.Provider) error {
	return r.db.Create(provider).Error
}

// GetByID 根据ID获取提供商
func (r *ProviderRepository) GetByID(id uint) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.First(&provider, id).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetByIdentifier 根据标识符获取提供商
func (r *ProviderRepository) GetByIdentifier(identifier string) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.Where("identifier = ?", identifier).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// Update 更新提供商
func (r *ProviderRepository) Update(provider *models.Provider) error {
	return r.db.Save(provider).Error
}

// Delete 删除提供商
func (r *ProviderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Provider{}, id).Error
}

// List 获取提供商列表
func (r *ProviderRepository) List(offset, limit int) ([]models.Provider, int64, error) {
	var providers []models.Provider
	var total int64

	if err := r.db.Model(&models.Provider{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("priority DESC, created_at DESC").Offset(offset).Limit(limit).Find(&providers).Error
	return providers, total, err
}

// GetActive 获取启用的提供商列表
func (r *ProviderRepository) GetActive() ([]models.Provider, error) {
	var providers []models.Provider
	err := r.db.Where("is_active = ?", true).Order("priority DESC").Find(&providers).Error
	return providers, err
}

// GetHighestPriority 获取优先级最高的启用提供商
func (r *ProviderRepository) GetHighestPriority() (*models.Provider, error) {
	var provider models.Provider
	err := r.db.Where("is_active = ?", true).Order("priority DESC").First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// Count 获取提供商总数
func (r *ProviderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Provider{}).Count(&count).Error
	return count, err
}

// CountActive 获取启用的提供商数量
func (r *ProviderRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Provider{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// ToggleActive 切换提供商启用状态,返回新状态
// 停用提供商不会级联停用其下的模型
func (r *ProviderRepository) ToggleActive(id uint) (bool, error) {
	var newState bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var provider models.Provider
		if err := tx.First(&provider, id).Error; err != nil {
			return err
		}

		newState = !provider.IsActive
		return tx.Model(&provider).Update("is_active", newState).Error
	})
	return newState, err
}
