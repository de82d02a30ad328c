package repository

import (
	"llm-console/internal/models"

	"gorm.io/gorm"
)

// ModelRepository 模型数据访问层
type ModelRepository struct {
	db *gorm.DB
}

// NewModelRepository 创建模型Repository
func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

// Create 创建模型
func (r *ModelRepository) Create(model *models.LLMModel) error {
	return r.db.Create(model).Error
}

// GetByID 根据ID获取模型
func (r *ModelRepository) GetByID(id uint) (*models.LLMModel, error) {
	var model models.LLMModel
	err := r.db.Preload("Provider").First(&model, id).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetByIdentifier 根据标识符获取模型
func (r *ModelRepository) GetByIdentifier(identifier string) (*models.LLMModel, error) {
	var model models.LLMModel
	err := r.db.Preload("Provider").Where("identifier = ?", identifier).First(&model).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetByModelID 根据提供商侧模型标识获取模型
func (r *ModelRepository) GetByModelID(modelID string) (*models.LLMModel, error) {
	var model models.LLMModel
	err := r.db.Preload("Provider").Where("model_id = ?", modelID).First(&model).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Update 更新模型
func (r *ModelRepository) Update(model *models.LLMModel) error {
	return r.db.Save(model).Error
}

// Delete 删除模型
func (r *ModelRepository) Delete(id uint) error {
	return r.db.Delete(&models.LLMModel{}, id).Error
}

// List 获取模型列表
func (r *ModelRepository) List(offset, limit int) ([]models.LLMModel, int64, error) {
	var items []models.LLMModel
	var total int64

	if err := r.db.Model(&models.LLMModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Provider").Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}

// GetActive 获取启用的模型列表
func (r *ModelRepository) GetActive() ([]models.LLMModel, error) {
	var items []models.LLMModel
	err := r.db.Where("is_active = ?", true).Find(&items).Error
	return items, err
}

// GetActiveByProvider 获取指定提供商下启用的模型
func (r *ModelRepository) GetActiveByProvider(providerID uint) ([]models.LLMModel, error) {
	var items []models.LLMModel
	err := r.db.Where("provider_id = ? AND is_active = ?", providerID, true).Find(&items).Error
	return items, err
}

// GetDefault 获取默认模型,不存在时返回gorm.ErrRecordNotFound
func (r *ModelRepository) GetDefault() (*models.LLMModel, error) {
	var model models.LLMModel
	err := r.db.Preload("Provider").Where("is_default = ?", true).First(&model).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Count 获取模型总数
func (r *ModelRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.LLMModel{}).Count(&count).Error
	return count, err
}

// CountActive 获取启用的模型数量
func (r *ModelRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.LLMModel{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// SetDefault 设置默认模型
// 在同一事务内先清除其它模型的默认标记,再设置目标模型,
// 保证任意时刻最多只有一个默认模型;默认模型同时强制为启用状态
func (r *ModelRepository) SetDefault(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var model models.LLMModel
		if err := tx.First(&model, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.LLMModel{}).Where("id <> ?", id).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&model).Updates(map[string]interface{}{
			"is_default": true,
			"is_active":  true,
		}).Error
	})
}

// ToggleActive 切换模型启用状态,返回新状态
// 停用默认模型时同时清除其默认标记
func (r *ModelRepository) ToggleActive(id uint) (bool, error) {
	var newState bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var model models.LLMModel
		if err := tx.First(&model, id).Error; err != nil {
			return err
		}

		newState = !model.IsActive
		updates := map[string]interface{}{"is_active": newState}
		if !newState && model.IsDefault {
			updates["is_default"] = false
		}

		return tx.Model(&model).Updates(updates).Error
	})
	return newState, err
}
