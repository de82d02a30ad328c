package repository

import (
	"llm-console/internal/models"

	"gorm.io/gorm"
)

// PromptTaskRepository 任务数据访问层
type PromptTaskRepository struct {
	db *gorm.DB
}

// NewPromptTaskRepository 创建任务Repository
func NewPromptTaskRepository(db *gorm.DB) *PromptTaskRepository {
	return &PromptTaskRepository{db: db}
}

// Create 创建任务
func (r *PromptTaskRepository) Create(task *models.PromptTask) error {
	return r.db.Create(task).Error
}

// GetByID 根据ID获取任务
func (r *PromptTaskRepository) GetByID(id uint) (*models.PromptTask, error) {
	var task models.PromptTask
	err := r.db.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByIdentifier 根据标识符获取任务
func (r *PromptTaskRepository) GetByIdentifier(identifier string) (*models.PromptTask, error) {
	var task models.PromptTask
	err := r.db.Where("identifier = ?", identifier).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update 更新任务
func (r *PromptTaskRepository) Update(task *models.PromptTask) error {
	return r.db.Save(task).Error
}

// Delete 删除任务
func (r *PromptTaskRepository) Delete(id uint) error {
	return r.db.Delete(&models.PromptTask{}, id).Error
}

// List 获取任务列表
func (r *PromptTaskRepository) List(offset, limit int) ([]models.PromptTask, int64, error) {
	var tasks []models.PromptTask
	var total int64

	if err := r.db.Model(&models.PromptTask{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("category, name").Offset(offset).Limit(limit).Find(&tasks).Error
	return tasks, total, err
}

// GetActive 获取启用的任务列表
func (r *PromptTaskRepository) GetActive() ([]models.PromptTask, error) {
	var tasks []models.PromptTask
	err := r.db.Where("is_active = ?", true).Order("category, name").Find(&tasks).Error
	return tasks, err
}

// GetActiveByCategory 获取指定分类下启用的任务
func (r *PromptTaskRepository) GetActiveByCategory(category string) ([]models.PromptTask, error) {
	var tasks []models.PromptTask
	err := r.db.Where("category = ? AND is_active = ?", category, true).Order("name").Find(&tasks).Error
	return tasks, err
}

// Count 获取任务总数
func (r *PromptTaskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PromptTask{}).Count(&count).Error
	return count, err
}

// CountActive 获取启用的任务数量
func (r *PromptTaskRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.PromptTask{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// ToggleActive 切换任务启用状态,返回新状态
func (r *PromptTaskRepository) ToggleActive(id uint) (bool, error) {
	var newState bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var task models.PromptTask
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}

		newState = !task.IsActive
		return tx.Model(&task).Update("is_active", newState).Error
	})
	return newState, err
}
