package models

import (
	"time"
)

// Provider LLM提供商配置
type Provider struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Identifier  string    `gorm:"uniqueIndex;size:100;not null" json:"identifier"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	AdapterType string    `gorm:"size:50;default:'openai'" json:"adapter_type"` // openai, anthropic 等
	BaseURL     string    `gorm:"size:255;not null" json:"base_url"`
	APIKey      string    `gorm:"size:255" json:"api_key"`
	Priority    int       `gorm:"default:0" json:"priority"` // 数值越大优先级越高
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联
	Models []LLMModel `gorm:"foreignKey:ProviderID" json:"models,omitempty"`
}

// TableName 指定表名
func (Provider) TableName() string {
	return "providers"
}
