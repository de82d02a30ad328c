package models

import (
	"time"
)

// PromptTask 提示词任务
type PromptTask struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Identifier string    `gorm:"uniqueIndex;size:100;not null" json:"identifier"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Category   string    `gorm:"size:50;index" json:"category"`
	InputType  string    `gorm:"size:50;default:'text'" json:"input_type"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 指定表名
func (PromptTask) TableName() string {
	return "prompt_tasks"
}
