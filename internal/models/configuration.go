package models

import (
	"time"
)

// Configuration LLM应用配置
// 配置可以不绑定模型,此时使用全局默认模型
type Configuration struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Identifier string    `gorm:"uniqueIndex;size:100;not null" json:"identifier"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	ModelID    *uint     `gorm:"index" json:"model_id"`
	Options    JSONMap   `gorm:"type:text" json:"options"` // 采样参数等
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	IsDefault  bool      `gorm:"default:false" json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 关联
	Model *LLMModel `gorm:"foreignKey:ModelID" json:"model,omitempty"`
}

// TableName 指定表名
func (Configuration) TableName() string {
	return "configurations"
}
