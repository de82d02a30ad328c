package dto

// CreatePromptTaskRequest 创建任务请求
type CreatePromptTaskRequest struct {
	Identifier string `json:"identifier" binding:"required" validate:"required,identifier"`
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	InputType  string `json:"input_type"`
	IsActive   *bool  `json:"is_active"`
}

// UpdatePromptTaskRequest 更新任务请求
type UpdatePromptTaskRequest struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	InputType *string `json:"input_type"`
	IsActive  *bool   `json:"is_active"`
}

// PromptTaskResponse 任务响应
type PromptTaskResponse struct {
	ID         uint   `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	InputType  string `json:"input_type"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// PromptTaskListResponse 任务列表响应
type PromptTaskListResponse struct {
	Success bool                 `json:"success"`
	Tasks   []PromptTaskResponse `json:"tasks"`
	Total   int64                `json:"total"`
}
