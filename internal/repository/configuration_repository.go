package repository

import (
	"llm-console/internal/models"

	"gorm.io/gorm"
)

// ConfigurationRepository 配置数据访问层
type ConfigurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository 创建配置Repository
func NewConfigurationRepository(db *gorm.DB) *ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

// Create 创建配置
func (r *ConfigurationRepository) Create(configuration *models.Configuration) error {
	return r.db.Create(configuration).Error
}

// GetByID 根据ID获取配置
func (r *ConfigurationRepository) GetByID(id uint) (*models.Configuration, error) {
	var configuration models.Configuration
	err := r.db.Preload("Model").First(&configuration, id).Error
	if err != nil {
		return nil, err
	}
	return &configuration, nil
}

// GetByIdentifier 根据标识符获取配置
func (r *ConfigurationRepository) GetByIdentifier(identifier string) (*models.Configuration, error) {
	var configuration models.Configuration
	err := r.db.Preload("Model").Where("identifier = ?", identifier).First(&configuration).Error
	if err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Update 更新配置
func (r *ConfigurationRepository) Update(configuration *models.Configuration) error {
	return r.db.Save(configuration).Error
}

// Delete 删除配置
func (r *ConfigurationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Configuration{}, id).Error
}

// List 获取配置列表
func (r *ConfigurationRepository) List(offset, limit int) ([]models.Configuration, int64, error) {
	var items []models.Configuration
	var total int64

	if err := r.db.Model(&models.Configuration{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Model").Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}

// GetActive 获取启用的配置列表
func (r *ConfigurationRepository) GetActive() ([]models.Configuration, error) {
	var items []models.Configuration
	err := r.db.Where("is_active = ?", true).Find(&items).Error
	return items, err
}

// GetDefault 获取默认配置,不存在时返回gorm.ErrRecordNotFound
func (r *ConfigurationRepository) GetDefault() (*models.Configuration, error) {
	var configuration models.Configuration
	err := r.db.Preload("Model").Where("is_default = ?", true).First(&configuration).Error
	if err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Count 获取配置总数
func (r *ConfigurationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Configuration{}).Count(&count).Error
	return count, err
}

// CountActive 获取启用的配置数量
func (r *ConfigurationRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Configuration{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// SetDefault 设置默认配置
// 与模型的默认语义一致:同一事务内清除其它配置的默认标记后再设置目标
func (r *ConfigurationRepository) SetDefault(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var configuration models.Configuration
		if err := tx.First(&configuration, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Configuration{}).Where("id <> ?", id).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&configuration).Updates(map[string]interface{}{
			"is_default": true,
			"is_active":  true,
		}).Error
	})
}

// ToggleActive 切换配置启用状态,返回新状态
func (r *ConfigurationRepository) ToggleActive(id uint) (bool, error) {
	var newState bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var configuration models.Configuration
		if err := tx.First(&configuration, id).Error; err != nil {
			return err
		}

		newState = !configuration.IsActive
		updates := map[string]interface{}{"is_active": newState}
		if !newState && configuration.IsDefault {
			updates["is_default"] = false
		}

		return tx.Model(&configuration).Updates(updates).Error
	})
	return newState, err
}
