package models

import (
	"time"
)

// LLMModel LLM模型配置
type LLMModel struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	Identifier      string     `gorm:"uniqueIndex;size:100;not null" json:"identifier"`
	Name            string     `gorm:"size:100;not null" json:"name"`
	ModelID         string     `gorm:"size:255;not null" json:"model_id"` // 提供商侧的模型标识
	ProviderID      uint       `gorm:"not null;index" json:"provider_id"`
	ContextLength   int        `gorm:"default:0" json:"context_length"`
	MaxOutputTokens int        `gorm:"default:0" json:"max_output_tokens"`
	Capabilities    StringList `gorm:"type:text" json:"capabilities"` // chat, vision 等能力标签
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	IsDefault       bool       `gorm:"default:false" json:"is_default"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// 关联
	Provider Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

// TableName 指定表名
func (LLMModel) TableName() string {
	return "llm_models"
}
